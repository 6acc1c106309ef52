package config

import (
	"gopkg.in/yaml.v3"
)

// Pipeline represents a full pipeline definition document. It is read-only
// after load and safe to share across concurrent runs.
type Pipeline struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Stages      []Stage  `yaml:"stages" validate:"required,min=1,dive"`
}

// Settings holds per-pipeline execution parameters. Zero values defer to the
// process-wide defaults resolved at startup.
type Settings struct {
	WatchdogTimeout int `yaml:"watchdog_timeout,omitempty" validate:"omitempty,min=1,max=86400"`
	Parallel        int `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=32"`
}

// Stage describes one named unit of work within a pipeline definition.
type Stage struct {
	ID   string `yaml:"id" validate:"required,stage_id"`
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type" validate:"required,oneof=command fetch delay"`

	Command *CommandStage `yaml:",inline,omitempty"`
	Fetch   *FetchStage   `yaml:",inline,omitempty"`
	Delay   *DelayStage   `yaml:",inline,omitempty"`
}

// UnmarshalYAML customises stage decoding to populate type-specific
// structures without conflicts.
func (s *Stage) UnmarshalYAML(value *yaml.Node) error {
	type baseStage struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	}

	var base baseStage
	if err := value.Decode(&base); err != nil {
		return err
	}

	s.ID = base.ID
	s.Name = base.Name
	s.Type = base.Type

	s.Command = nil
	s.Fetch = nil
	s.Delay = nil

	switch base.Type {
	case "command":
		var cmd CommandStage
		if err := value.Decode(&cmd); err != nil {
			return err
		}
		s.Command = &cmd
	case "fetch":
		var fetch FetchStage
		if err := value.Decode(&fetch); err != nil {
			return err
		}
		s.Fetch = &fetch
	case "delay":
		var delay DelayStage
		if err := value.Decode(&delay); err != nil {
			return err
		}
		s.Delay = &delay
	}

	return nil
}

// CommandStage executes a shell command against the pipeline workspace.
type CommandStage struct {
	Command string            `yaml:"command" validate:"required,min=1"`
	Shell   string            `yaml:"shell,omitempty"`
	WorkDir string            `yaml:"workdir,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
}

// FetchStage clones or updates a git repository that provides run inputs.
type FetchStage struct {
	URL         string `yaml:"url" validate:"required,url"`
	Destination string `yaml:"destination" validate:"required"`
	Branch      string `yaml:"branch,omitempty"`
	Depth       int    `yaml:"depth,omitempty" validate:"omitempty,min=0"`
}

// DelayStage pauses the run for a fixed duration.
type DelayStage struct {
	Duration string `yaml:"duration" validate:"required"`
}

// StageMap builds a lookup table for stages by ID.
func StageMap(stages []Stage) map[string]Stage {
	out := make(map[string]Stage, len(stages))
	for _, stage := range stages {
		out[stage.ID] = stage
	}
	return out
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	inliner "github.com/lasse-unity3d/CSS-Inliner"
)

// Config is the configuration of the command, as read from a YAML file:
//
//    inliner:
//      strip_attrs: true
//      leave_style: false
//      preserve_uninlinable: true
//    strict: false
//    dump: false
//    dot: ""
//
// Command line flags take precedence.
type Config struct {
	Inliner inliner.Options `yaml:"inliner"`
	Strict  bool            `yaml:"strict"`
	Dump    bool            `yaml:"dump"` // log the inlined document tree
	Dot     string          `yaml:"dot"`  // write the inlined document tree as GraphViz DOT
}

// LoadConfiguration reads a configuration file. An empty file name results
// in the default configuration.
func LoadConfiguration(fname string) (*Config, error) {
	cfg := &Config{}
	if fname == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return parseConfiguration(data)
}

func parseConfiguration(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("malformed configuration: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) applyFlags(cmd *cli.Command) {
	if cmd.IsSet("strip-attrs") {
		cfg.Inliner.StripAttrs = cmd.Bool("strip-attrs")
	}
	if cmd.IsSet("leave-style") {
		cfg.Inliner.LeaveStyle = cmd.Bool("leave-style")
	}
	if cmd.IsSet("preserve") {
		cfg.Inliner.PreserveUninlinable = cmd.Bool("preserve")
	}
	if cmd.IsSet("strict") {
		cfg.Strict = cmd.Bool("strict")
	}
	if cmd.IsSet("dump") {
		cfg.Dump = cmd.Bool("dump")
	}
	if cmd.IsSet("dot") {
		cfg.Dot = cmd.String("dot")
	}
}

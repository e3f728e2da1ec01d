// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/shsenroll/internal/cli"
	"github.com/thenoetrevino/shsenroll/internal/database"
)

// FlagParser provides common flag extraction patterns.
// Every error it returns wraps cli.ErrUsage.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseStudentID extracts a student ID such as S000001 from a flag
func (p *FlagParser) ParseStudentID(flagName string) (string, error) {
	id, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	id = strings.ToUpper(id)
	if !database.IsStudentID(id) {
		return "", fmt.Errorf("%w: --%s must look like S000001, got %q", cli.ErrUsage, flagName, id)
	}
	return id, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse %s flag: %v", cli.ErrUsage, flagName, err)
	}
	if err := cli.RequireFlag(flagName, value); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// ParseGrade extracts a grade level flag. Empty means every grade.
func (p *FlagParser) ParseGrade(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse %s flag: %v", cli.ErrUsage, flagName, err)
	}
	return cli.ParseGrade(value)
}

// ParseStrand extracts a strand flag. Empty means every strand.
func (p *FlagParser) ParseStrand(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse %s flag: %v", cli.ErrUsage, flagName, err)
	}
	return cli.ParseStrand(value)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}

// Package openssl asks the local openssl binary which library version it
// links and which cipher suites it was compiled with.
package openssl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const DefaultPath = "openssl"

//go:generate counterfeiter . Tool

type Tool interface {
	Version(ctx context.Context) (string, error)
	Ciphers(ctx context.Context) ([]string, error)
}

type CLI struct {
	Path string
}

func NewCLI(path string) *CLI {
	if path == "" {
		path = DefaultPath
	}
	return &CLI{Path: path}
}

func (c *CLI) Version(ctx context.Context) (string, error) {
	bs, err := c.run(ctx, "version")
	if err != nil {
		return "", err
	}

	version := strings.TrimSpace(string(bs))
	if version == "" {
		return "", errors.New("openssl version printed nothing")
	}

	return version, nil
}

// Ciphers lists every suite the library was compiled with, in the order
// openssl prints them.
func (c *CLI) Ciphers(ctx context.Context) ([]string, error) {
	bs, err := c.run(ctx, "ciphers", "ALL:COMPLEMENTOFALL")
	if err != nil {
		return nil, err
	}

	return ParseCipherList(string(bs)), nil
}

func (c *CLI) run(ctx context.Context, arguments ...string) ([]byte, error) {
	path := c.Path
	if path == "" {
		path = DefaultPath
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, arguments...)
	cmd.Stderr = &stderr

	bs, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %s %s: %w (%s)", path, strings.Join(arguments, " "), err, strings.TrimSpace(stderr.String()))
	}

	return bs, nil
}

// ParseCipherList splits colon separated openssl cipher output.
func ParseCipherList(output string) []string {
	ciphers := []string{}

	for _, name := range strings.Split(strings.TrimSpace(output), ":") {
		name = strings.TrimSpace(name)
		if name != "" {
			ciphers = append(ciphers, name)
		}
	}

	return ciphers
}

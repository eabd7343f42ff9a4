// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package build

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DryRunFlag dry run flag
var DryRunFlag = flag.Bool("n", false, "dry run, don't execute commands")

// Environment contains metadata provided by the build environment.
type Environment struct {
	Commit string
	Date   string
}

// Env reads the commit hash and its date from git, leaving both empty
// outside a checkout.
func Env() *Environment {
	commit := RunGit("rev-parse", "HEAD")
	if commit == "" {
		return &Environment{}
	}
	date := RunGit("show", "-s", "--format=%cd", "--date=format:%Y%m%d", commit)
	return &Environment{Commit: commit, Date: date}
}

// MustRun executes the given command and exits the host process for
// any error.
func MustRun(cmd *exec.Cmd) {
	fmt.Println(">>>", strings.Join(cmd.Args, " "))
	if !*DryRunFlag {
		cmd.Stderr = os.Stderr
		cmd.Stdout = os.Stdout
		if err := cmd.Run(); err != nil {
			log.Fatal(err)
		}
	}
}

var warnedAboutGit bool

// RunGit runs a git subcommand and returns its output. A missing git
// or a directory that is not a checkout yields "".
func RunGit(args ...string) string {
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		if !warnedAboutGit {
			log.Println("Warning: git", strings.Join(args, " "), "failed:", err, strings.TrimSpace(stderr.String()))
			warnedAboutGit = true
		}
		return ""
	}
	return strings.TrimSpace(stdout.String())
}

// GoTool returns the command that runs a go tool from GOROOT, so the
// tools match the go version running the build script.
func GoTool(tool string, args ...string) *exec.Cmd {
	args = append([]string{tool}, args...)
	return exec.Command(filepath.Join(runtime.GOROOT(), "bin", "go"), args...) //nolint:gosec // any better way?
}

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gogpu/shaderlink/frontend"
	"github.com/gogpu/shaderlink/limits"
	"github.com/gogpu/shaderlink/link"
	"github.com/gogpu/shaderlink/program"
)

// runLink loads a bundle and an optional limits file, runs the linker, and
// prints the resulting status, masks, and info log.
func runLink(cmd *cobra.Command, bundlePath, limitsPath string, log *logrus.Logger) error {
	prog, err := loadBundle(bundlePath)
	if err != nil {
		return err
	}

	ctx := link.DefaultContext()
	if limitsPath != "" {
		ctx, err = limits.Load(limitsPath)
		if err != nil {
			return err
		}
	}

	linker := link.NewLinker(frontend.New(), nil)
	if log.IsLevelEnabled(logrus.InfoLevel) {
		linker.Log = func(state string, sp *program.ShaderProgram) {
			log.WithField("state", state).Info("linker pass")
		}
	}

	out := cmd.OutOrStdout()

	linkErr := linker.Link(ctx, prog)

	fmt.Fprintf(out, "link status: %v\n", prog.LinkStatus)
	if prog.InfoLog != "" {
		fmt.Fprintf(out, "info log: %s\n", prog.InfoLog)
	}
	if prog.VertexProgram != nil {
		fmt.Fprintf(out, "vertex: inputsRead=%#08x outputsWritten=%#016x\n",
			prog.VertexProgram.InputsRead, prog.VertexProgram.OutputsWritten)
	}
	if prog.GeometryProgram != nil {
		fmt.Fprintf(out, "geometry: inputsRead=%#08x outputsWritten=%#016x\n",
			prog.GeometryProgram.InputsRead, prog.GeometryProgram.OutputsWritten)
	}
	if prog.FragmentProgram != nil {
		fmt.Fprintf(out, "fragment: inputsRead=%#08x outputsWritten=%#016x\n",
			prog.FragmentProgram.InputsRead, prog.FragmentProgram.OutputsWritten)
	}

	return linkErr
}

// Package cli builds the cobra commands behind the plotting binaries.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/iafilius/TrainingPlots/src/logging"
	"github.com/iafilius/TrainingPlots/src/plotters"
)

// NewGenEvalCommand renders the embedded GenEval curve.
func NewGenEvalCommand(use string) *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:          use,
		Short:        "Plot GenEval GRPO performance from the embedded checkpoints",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rf.session(cmd)
			if err != nil {
				return err
			}
			if err := runGenEval(s); err != nil {
				return err
			}
			return s.flush()
		},
	}
	rf.register(cmd.Flags())
	return cmd
}

// NewOCRCommand renders the OCR reward curve from a training log.
func NewOCRCommand(use string) *cobra.Command {
	var rf renderFlags
	var of ocrFlags
	cmd := &cobra.Command{
		Use:          use,
		Short:        "Plot OCR GRPO training reward from a CSV export",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rf.session(cmd)
			if err != nil {
				return err
			}
			if err := runOCR(s, &of); err != nil {
				return err
			}
			return s.flush()
		},
	}
	rf.register(cmd.Flags())
	of.register(cmd.Flags())
	return cmd
}

// NewRootCommand groups both charts under one binary, plus "all" which
// renders them back to back and "columns" for inspecting a log.
func NewRootCommand() *cobra.Command {
	var rf renderFlags
	var of ocrFlags
	root := &cobra.Command{
		Use:          "trainplots",
		Short:        "Render GRPO training-progress charts",
		SilenceUsage: true,
	}
	rf.register(root.PersistentFlags())

	geneval := &cobra.Command{
		Use:   "geneval",
		Short: "Plot GenEval GRPO performance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rf.session(cmd)
			if err != nil {
				return err
			}
			if err := runGenEval(s); err != nil {
				return err
			}
			return s.flush()
		},
	}
	ocr := &cobra.Command{
		Use:   "ocr",
		Short: "Plot OCR GRPO training reward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rf.session(cmd)
			if err != nil {
				return err
			}
			if err := runOCR(s, &of); err != nil {
				return err
			}
			return s.flush()
		},
	}
	all := &cobra.Command{
		Use:   "all",
		Short: "Plot every chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rf.session(cmd)
			if err != nil {
				return err
			}
			if err := runGenEval(s); err != nil {
				return err
			}
			if err := runOCR(s, &of); err != nil {
				return err
			}
			return s.flush()
		},
	}
	of.register(ocr.Flags())
	of.register(all.Flags())
	root.AddCommand(geneval, ocr, all, newColumnsCommand())
	return root
}

func runGenEval(s *session) error {
	res, err := plotters.NewGenEvalPlotter(s.opts).Run()
	if err != nil {
		return err
	}
	logStopped("geneval", res)
	return nil
}

func runOCR(s *session, of *ocrFlags) error {
	res, err := of.plotter(s.opts).Run()
	if err != nil {
		return err
	}
	logStopped("ocr", res)
	return nil
}

// logStopped notes a plotter that stopped without writing. The expected
// conditions were already printed by the plotter; anything else is unusual.
func logStopped(name string, res plotters.Outcome) {
	switch {
	case res.Stopped == nil:
	case plotters.Reportable(res.Stopped):
		logging.Debugf("%s: stopped without output: %v", name, res.Stopped)
	default:
		logging.Warnf("%s: stopped without output: %v", name, res.Stopped)
	}
}

// Execute runs cmd and maps the result to a process exit status. Reported
// conditions (missing file, missing column, no data) exit 0; failures are
// logged at error level and exit 1.
func Execute(cmd *cobra.Command) int {
	cmd.SilenceErrors = true
	logging.SetOutput(cmd.ErrOrStderr())
	if err := cmd.Execute(); err != nil {
		logging.Errorf("%v", err)
		return 1
	}
	return 0
}

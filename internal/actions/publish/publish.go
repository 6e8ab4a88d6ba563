// Package publish implements the feature-branch publish run: create the
// plan's branch, stage the plan's files, commit with the plan's message,
// and print the push follow-up.
package publish

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	branchouterrors "branchout.dev/branchout/internal/errors"
	"branchout.dev/branchout/internal/git"
	"branchout.dev/branchout/internal/output"
	"branchout.dev/branchout/internal/plan"
	"branchout.dev/branchout/internal/runtime"
)

// Options contains options for the publish command
type Options struct {
	// FailFast aborts the run on the first failed step instead of
	// continuing to the next one.
	FailFast bool

	// DryRun prints the steps without touching the repository.
	DryRun bool

	// Interactive asks for confirmation before mutating the repository.
	Interactive bool
}

// Step names, in execution order
const (
	StepBranch = "branch"
	StepStage  = "stage"
	StepCommit = "commit"
)

// StepResult records the outcome of a single step
type StepResult struct {
	Name string
	// Path is set for stage steps, one result per plan file
	Path string
	Err  error
}

// Result holds the per-step outcomes of a publish run
type Result struct {
	Steps []StepResult
}

func (r *Result) record(name, path string, err error) {
	r.Steps = append(r.Steps, StepResult{Name: name, Path: path, Err: err})
}

// FailedSteps returns the steps that reported an error
func (r *Result) FailedSteps() []StepResult {
	var failed []StepResult
	for _, step := range r.Steps {
		if step.Err != nil {
			failed = append(failed, step)
		}
	}
	return failed
}

// CommitFailed reports whether the commit step ran and failed.
// The process exit status follows the final step only, so earlier step
// failures do not affect it.
func (r *Result) CommitFailed() bool {
	for _, step := range r.Steps {
		if step.Name == StepCommit && step.Err != nil {
			return true
		}
	}
	return false
}

// ErrAborted is returned when the user declines the interactive confirmation
var ErrAborted = fmt.Errorf("aborted")

// Action runs the publish plan against the ambient repository.
// Unless opts.FailFast is set, a failed step is reported and the run
// continues with the next step.
func Action(ctx context.Context, rt *runtime.Context, p plan.Plan, opts Options) (*Result, error) {
	splog := rt.Splog

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if opts.DryRun {
		printDryRun(splog, p)
		return &Result{}, nil
	}

	if opts.Interactive {
		confirmed, err := confirm(p)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, ErrAborted
		}
	}

	result := &Result{}

	splog.Info("%s", output.ColorGreen(fmt.Sprintf("Creating branch %s...", p.Branch)))
	branchErr := git.CreateAndCheckoutBranch(ctx, p.Branch)
	if branchErr != nil {
		// checkout -b reports a pre-existing branch only via stderr
		if exists, existsErr := git.BranchExists(p.Branch); existsErr == nil && exists {
			branchErr = branchouterrors.NewBranchExistsError(p.Branch)
		}
	}
	result.record(StepBranch, "", branchErr)
	if branchErr != nil {
		splog.Error("%s", output.ColorRed(fmt.Sprintf("Branch step failed: %v", branchErr)))
		if opts.FailFast {
			return result, branchErr
		}
	}

	splog.Info("%s", output.ColorGreen(fmt.Sprintf("Staging %d files...", len(p.Files))))
	for _, file := range p.Files {
		stageErr := git.StageFile(ctx, file)
		result.record(StepStage, file, stageErr)
		if stageErr != nil {
			splog.Error("%s", output.ColorRed(fmt.Sprintf("Stage step failed for %s: %v", file, stageErr)))
			if opts.FailFast {
				return result, stageErr
			}
		}
	}

	splog.Info("%s", output.ColorGreen(fmt.Sprintf("Committing %q...", p.Subject())))
	commitErr := git.Commit(ctx, p.Message)
	result.record(StepCommit, "", commitErr)
	if commitErr != nil {
		splog.Error("%s", output.ColorRed(fmt.Sprintf("Commit step failed: %v", commitErr)))
		if opts.FailFast {
			return result, commitErr
		}
	}

	splog.Newline()
	splog.Info("%s", output.ColorBlue("Next step: push the branch with"))
	splog.Info("%s", output.ColorBlue(fmt.Sprintf("  git push -u %s %s", git.GetRemote(), p.Branch)))

	return result, nil
}

// printDryRun lists the steps a real run would execute
func printDryRun(splog *output.Splog, p plan.Plan) {
	splog.Info("%s", output.ColorDim("Dry run, nothing will be executed"))
	splog.Info("git checkout -b %s", p.Branch)
	for _, file := range p.Files {
		splog.Info("git add %s", file)
	}
	splog.Info("git commit -m %q", p.Subject())
}

// confirm asks the user whether to run the plan
func confirm(p plan.Plan) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Create %s and commit %d files?", p.Branch, len(p.Files)),
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}

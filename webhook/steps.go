package webhook

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/tracreed/ebina/common/log"
)

// StepTimeout is the longest a single step can run.
const StepTimeout = 10 * time.Minute

// Step is one command run during a redeploy.
type Step struct {
	Dir  string   `toml:"dir"`
	Cmd  string   `toml:"cmd"`
	Args []string `toml:"args"`
}

func (s Step) String() string {
	return strings.Join(append([]string{s.Cmd}, s.Args...), " ")
}

// Runner runs a single step and returns its combined output.
type Runner interface {
	Run(context.Context, Step) ([]byte, error)
}

// ExecRunner runs steps as local processes.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, s Step) ([]byte, error) {
	cmd := exec.CommandContext(ctx, s.Cmd, s.Args...)
	cmd.Dir = s.Dir
	return cmd.CombinedOutput()
}

// Deploy runs steps in order, stopping at the first one that fails.
func Deploy(ctx context.Context, r Runner, steps []Step) error {
	for i, s := range steps {
		log.Infof("Running step %d/%d: %v", i+1, len(steps), s)

		stepCtx, cancel := context.WithTimeout(ctx, StepTimeout)
		out, err := r.Run(stepCtx, s)
		cancel()

		if len(out) > 0 {
			log.Debugf("Output of %q:\n%s", s, out)
		}
		if err != nil {
			return errors.Wrapf(err, "step %d (%v)", i+1, s)
		}
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sortviz/sortviz"
	"github.com/sortviz/sortviz/internal/adapters/file"
	"github.com/sortviz/sortviz/internal/adapters/redis"
	"github.com/sortviz/sortviz/internal/config"
	"github.com/sortviz/sortviz/internal/presentation/tui"
	"github.com/sortviz/sortviz/pkg/domain"
)

// ReplayOptions selects a stored trace and how to play it back.
type ReplayOptions struct {
	// Path replays a trace file directly; ID loads from the configured store.
	Path string
	ID   string

	UseRedis bool
	Config   config.Config

	JSON     bool
	Headless bool
	Delay    time.Duration
	Debug    bool

	Out io.Writer
}

// ReplayTrace loads a stored trace and streams it to the output.
func ReplayTrace(ctx context.Context, opts ReplayOptions) error {
	logger := createLogger(opts.Debug)
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	trace, err := loadTrace(ctx, opts)
	if err != nil {
		return err
	}
	logger.Debug("trace loaded", "steps", len(trace))

	runner := sortviz.NewRunner()
	runner.Output = out
	runner.Headless = opts.Headless
	runner.JSON = opts.JSON
	runner.Delay = opts.Delay
	if !opts.JSON && stdoutIsTerminal() {
		runner.Renderer = tui.NewStepRenderer()
	}

	return runner.Replay(ctx, trace)
}

func loadTrace(ctx context.Context, opts ReplayOptions) (domain.Trace, error) {
	switch {
	case opts.Path != "":
		trace, err := file.ReadTrace(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read trace file: %w", err)
		}
		return trace, nil

	case opts.ID != "" && opts.UseRedis:
		rc := opts.Config.Redis
		store := redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithPrefix(rc.Prefix),
			redis.WithTTL(rc.TTL.Std()),
		)
		defer store.Close()
		return store.Load(ctx, opts.ID)

	case opts.ID != "":
		store, err := file.New(opts.Config.Traces.Dir)
		if err != nil {
			return nil, err
		}
		return store.Load(ctx, opts.ID)

	default:
		return nil, fmt.Errorf("either a trace file path or a trace ID is required")
	}
}

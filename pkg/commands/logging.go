package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/common/promslog"
)

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl := promslog.NewLevel()
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return promslog.New(&promslog.Config{Level: lvl, Writer: w}), nil
}

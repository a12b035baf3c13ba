// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/eduadmin/internal/app/resources"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(viewdata.DefaultSiteName)

	n := timeouts.ConfigureFromEnv()
	t := timeouts.Current()
	logger.Info("handler timeouts",
		zap.Int("from_env", n),
		zap.Duration("ping", t.Ping),
		zap.Duration("short", t.Short),
		zap.Duration("medium", t.Medium),
		zap.Duration("long", t.Long))
	return nil
}

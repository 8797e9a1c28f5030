// Package autoload initializes the global logger from environment
// configuration as a side effect of being imported.
package autoload

import (
	configx "github.com/finwell-ai/advisor/pkg/config"
	logx "github.com/finwell-ai/advisor/pkg/logger"
)

func init() {
	cfg, err := configx.New[logx.Config]("LOG")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*cfg)
}

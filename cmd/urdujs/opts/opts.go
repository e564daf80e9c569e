package opts

import (
	"github.com/urdujs/urdujs/pkg/config"
	"github.com/urdujs/urdujs/pkg/engine"
	"github.com/urdujs/urdujs/pkg/log"
	"github.com/urdujs/urdujs/pkg/transpile"
	"github.com/urdujs/urdujs/pkg/vocab"
)

// RootOpts holds dependencies shared by all commands
type RootOpts struct {
	Config     *config.Config
	Table      *vocab.Table
	Transpiler *transpile.Transpiler
	Executor   *engine.Executor
	Logger     *log.Logger
}

package liveprops

import (
	"log/slog"

	"github.com/LunkLoafGrumble/ux/utils"
)

type Options struct {
	Logger utils.Logger
}

func (o *Options) SetDefaults() {
	if o.Logger == nil {
		o.Logger = utils.NewDefaultLogger(slog.LevelInfo)
	}
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-store-go/support"
)

func live(cfg *support.Config) (ScoreboardHandler, error) {
	panic(wire.Build(Live))
}

package main

import (
	"github.com/reusee/bfi/bficonfigs"
	"github.com/reusee/bfi/bfio"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/debugs"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bficonfigs.Module
	IO      bfio.Module
	VM      bfvm.Module
	Debugs  debugs.Module
}

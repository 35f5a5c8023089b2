package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		mode Mode,
		dirs ConfigDirs,
	) {
		if mode != ModeProduction {
			t.Fatal()
		}
		if len(dirs) == 0 || dirs[len(dirs)-1] != "/etc" {
			t.Fatalf("got %v", dirs)
		}
	})
}

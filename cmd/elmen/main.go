// Command elmen scaffolds TypeScript projects.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/elmen-dev/elmen/internal/cli"
	"github.com/elmen-dev/elmen/internal/tui"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

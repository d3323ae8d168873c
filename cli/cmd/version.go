package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardnew/arprof/pkg"
)

// Version prints the program name and version.
type Version struct{}

// Run writes the version line to the kong context's stdout, or os.Stdout
// when ctx carries no kong context.
func (Version) Run(ctx context.Context) error {
	var w io.Writer = os.Stdout
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		w = ktx.Stdout
	}

	_, err := fmt.Fprintln(w, pkg.Name, strings.TrimSpace(pkg.Version))

	return err
}

package wayroute

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// NavTrace is a guard logging each navigation's outcome and duration.
func NavTrace(ctx Context) error {
	start := time.Now()

	err := ctx.Next()

	tag := color.GreenString("ok")
	if err != nil {
		tag = color.RedString("err")
	}

	fmt.Printf("%sZ %s %q -> %q %v [%s]\n",
		time.Now().UTC().Format("20060102T150405"),
		tag, ctx.URL(), ctx.Path(), ctx.Params(), time.Since(start))

	return err
}

// Command hibari renders an HTML page onto a fixed-width character
// grid in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/hibari-browser/hibari/config"
	"github.com/hibari-browser/hibari/css"
	"github.com/hibari-browser/hibari/dom"
	"github.com/hibari-browser/hibari/html"
	"github.com/hibari-browser/hibari/network"
	"github.com/hibari-browser/hibari/ui"
)

func main() {
	cmd := &cli.Command{
		Name:      "hibari",
		Usage:     "render an HTML page in the terminal",
		ArgsUsage: "<url-or-file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration `FILE`"},
			&cli.IntFlag{Name: "width", Usage: "viewport width in columns (default: terminal width)"},
			&cli.IntFlag{Name: "height", Usage: "viewport height in rows (default: terminal height)"},
			&cli.StringFlag{Name: "css", Usage: "additional stylesheet `FILE`"},
			&cli.BoolFlag{Name: "dump", Usage: "render one frame to stdout and exit"},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one page target, got %d", cmd.NArg())
	}
	target := cmd.Args().First()

	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if w := cmd.Int("width"); w > 0 {
		conf.Viewport.Width = int(w)
	}
	if h := cmd.Int("height"); h > 0 {
		conf.Viewport.Height = int(h)
	}
	if path := cmd.String("css"); path != "" {
		conf.Stylesheet = path
	}

	log, err := conf.Logging.Prepare()
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Debug("program started", zap.Strings("args", os.Args))

	page, err := loadPage(ctx, conf, target, log)
	if err != nil {
		return err
	}

	document, err := html.Parse(page)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", target, err)
	}

	sheet, err := pageStylesheet(conf, document)
	if err != nil {
		return err
	}

	if cmd.Bool("dump") {
		width, height := conf.Viewport.Width, conf.Viewport.Height
		if width == 0 {
			width = 80
		}
		if height == 0 {
			height = 40
		}
		browser := ui.New(document, sheet, ui.WithLogger(log))
		fmt.Println(browser.RenderFrame(width, height))
		return nil
	}

	browser := ui.New(document, sheet,
		ui.WithViewport(conf.Viewport.Width, conf.Viewport.Height),
		ui.WithLogger(log))
	if err := browser.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func loadPage(ctx context.Context, conf *config.Config, target string, log *zap.Logger) (string, error) {
	opts := []network.ClientOption{}
	if conf.Network.TimeoutSeconds > 0 {
		opts = append(opts, network.WithTimeout(conf.Network.Timeout()))
	} else {
		opts = append(opts, network.WithTimeout(30*time.Second))
	}
	if conf.Network.UserAgent != "" {
		opts = append(opts, network.WithUserAgent(conf.Network.UserAgent))
	}
	client, err := network.NewClient(opts...)
	if err != nil {
		return "", err
	}
	return network.NewLoader(client, log).Load(ctx, target)
}

// pageStylesheet combines the document's inline <style> sheets with
// the user stylesheet from the configuration, in that order, so user
// rules win specificity ties.
func pageStylesheet(conf *config.Config, document *dom.Node) (css.Stylesheet, error) {
	var sb strings.Builder
	sb.WriteString(html.DocumentStylesheet(document))
	if conf.Stylesheet != "" {
		user, err := os.ReadFile(conf.Stylesheet)
		if err != nil {
			return css.Stylesheet{}, fmt.Errorf("failed to read stylesheet: %w", err)
		}
		sb.Write(user)
	}
	return css.ParseStylesheet(sb.String()), nil
}

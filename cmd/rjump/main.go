package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rjump/internal/app"
	"github.com/kk-code-lab/rjump/internal/config"
	"github.com/kk-code-lab/rjump/internal/debuglog"
)

var version = "dev"

func printHelp() {
	fmt.Print(`rjump - Jump anywhere in a text file with a few keystrokes

USAGE:
    rjump [OPTIONS] FILE

OPTIONS:
    -h, --help       Show this help message and exit
    -v, --version    Print the version and exit

KEYS:
    /                Search, then Enter to keep the tags and type one to jump
    Ctrl+L, Ctrl+W   Tag line starts or whitespace runs
    Shift+tag        Extend the selection to the match
    Ctrl+T           Toggle target mode (select the word at the match)
    ?                Help

CONFIG:
    $RJUMP_CONFIG or <user config dir>/rjump/config.toml
    RJUMP_ALPHABET overrides the tag alphabet; RJUMP_DEBUG=1 writes rjump-debug.log
`)
}

func run(args []string) int {
	var path string
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			printHelp()
			return 0
		case "-v", "--version":
			fmt.Println("rjump", version)
			return 0
		default:
			if path != "" {
				fmt.Fprintln(os.Stderr, "Error: expected exactly one FILE")
				return 2
			}
			path = arg
		}
	}
	if path == "" {
		printHelp()
		return 2
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if cfg.DebugLog && !debuglog.Enabled() {
		debuglog.Enable("")
	}

	app, err := apppkg.NewApplication(path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		return 1
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return 0
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	os.Exit(run(os.Args[1:]))
}

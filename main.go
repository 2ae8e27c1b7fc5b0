package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"github.com/nstehr/harvest/agent"
	"github.com/nstehr/harvest/ipc"
	"github.com/nstehr/harvest/journal"
	"github.com/nstehr/harvest/rules"
)

const banner = `
██╗  ██╗ █████╗ ██████╗ ██╗   ██╗███████╗███████╗████████╗
██║  ██║██╔══██╗██╔══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
███████║███████║██████╔╝██║   ██║█████╗  ███████╗   ██║
██╔══██║██╔══██║██╔══██╗╚██╗ ██╔╝██╔══╝  ╚════██║   ██║
██║  ██║██║  ██║██║  ██║ ╚████╔╝ ███████╗███████║   ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚══════╝   ╚═╝

Rule-Driven Resource Collection`

func main() {
	socketPath := flag.String("socket", "/tmp/harvest.sock", "unix socket to listen on")
	policyPath := flag.String("policy", "", "YAML policy file (defaults are used when empty)")
	journalDir := flag.String("journal", "", "directory for per-session decision journals (disabled when empty)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [gold wood]\n%s\n", os.Args[0], agent.Usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	goals, err := agent.ParseGoals(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println(banner)

	p, err := loadPolicy(*policyPath)
	if err != nil {
		slog.Error("failed to load policy", "path", *policyPath, "error", err)
		os.Exit(1)
	}
	engine, err := rules.NewEngine(rules.CompileStrategy(p), p)
	if err != nil {
		slog.Error("failed to compile rules", "error", err)
		os.Exit(1)
	}
	slog.Info("starting harvest", "goldGoal", goals.Gold, "woodGoal", goals.Wood, "workerTarget", p.WorkerTarget)

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(*socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", *socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(*socketPath)

	slog.Info("listening on domain socket", "path", *socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				reload(engine, *policyPath)
			}
		}
	}()

	var sessions atomic.Int64
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			n := sessions.Add(1)
			slog.Info("new connection accepted", "session", n)
			go handleConn(conn, engine, goals, *journalDir, n)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func loadPolicy(path string) (rules.Policy, error) {
	if path == "" {
		return rules.DefaultPolicy(), nil
	}
	return rules.LoadPolicy(path)
}

// reload re-reads the policy file and swaps the engine's rules. On any
// failure the running rules stay in place.
func reload(engine *rules.Engine, path string) {
	if path == "" {
		slog.Info("SIGHUP ignored, no policy file configured")
		return
	}
	p, err := rules.LoadPolicy(path)
	if err != nil {
		slog.Error("policy reload failed", "path", path, "error", err)
		return
	}
	if err := engine.Swap(rules.CompileStrategy(p), p); err != nil {
		slog.Error("rule swap failed", "error", err)
	}
}

func handleConn(conn net.Conn, engine *rules.Engine, goals agent.Goals, journalDir string, session int64) {
	c := ipc.NewConnection(conn, nil)
	a := agent.New(c, engine, goals)

	if journalDir != "" {
		path := filepath.Join(journalDir, fmt.Sprintf("session-%d.jsonl.zst", session))
		w, err := journal.Create(path)
		if err != nil {
			slog.Warn("journal disabled for session", "path", path, "error", err)
		} else {
			a.Journal = w
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("journal close failed", "path", path, "error", err)
				}
			}()
		}
	}

	a.Register()
	c.ReadLoop()
}

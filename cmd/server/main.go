package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"dungeon-delve/internal/game"
	"dungeon-delve/internal/server"
)

const (
	defaultAddr = ":2222"
	hostKeyPath = "host_key"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	addr := flag.String("addr", defaultAddr, "listen address")
	hostKey := flag.String("hostkey", hostKeyPath, "SSH host key file (generated if missing)")
	size := flag.Int("size", game.DefaultConfig.DungeonSize, "dungeon width and height in rooms")
	difficulty := flag.Int("difficulty", game.DefaultConfig.BaseDifficulty, "difficulty tier of the first row")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	flag.Parse()

	if err := ensureHostKey(*hostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	listenAddr := *addr
	if port := os.Getenv("PORT"); port != "" {
		listenAddr = ":" + port
	}

	cfg := game.Config{DungeonSize: *size, BaseDifficulty: *difficulty, Seed: *seed}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid -size: %v", err)
	}
	gameLoop := game.NewGameLoop(cfg)
	sshServer := server.NewSSHServer(listenAddr, *hostKey, gameLoop)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return gameLoop.Run(ctx) })
	g.Go(func() error { return sshServer.Start(ctx) })

	_, port, _ := net.SplitHostPort(listenAddr)
	log.Printf("Starting Dungeon Delve (%dx%d, tier %d), connect with: ssh -p %s YourName@localhost",
		cfg.DungeonSize, cfg.DungeonSize, cfg.BaseDifficulty, port)
	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}

// Command obsctl is a command-line OBS-WebSocket client: connect,
// identify, send one request, or subscribe to events of one type and
// print deliveries until interrupted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danmuck/obswire/internal/logging"
	"github.com/danmuck/obswire/internal/profile"
	"github.com/danmuck/obswire/internal/protocol"
	"github.com/danmuck/obswire/internal/session"
)

func main() {
	logging.ConfigureRuntime()

	var (
		url          = flag.String("url", "", "server URL, scheme://host:port[/password] (overrides -profile)")
		profileStore = flag.String("profile-store", "obsctl-profiles.toml", "path to the named-profile store")
		profileName  = flag.String("profile", "local", "named profile to use when -url is not set")
		requestType  = flag.String("request", "GetVersion", "request type to send")
		requestData  = flag.String("data", "{}", "JSON object to send as requestData")
		subscribe    = flag.String("subscribe", "", "event type to subscribe to and print forever, instead of sending a request")
		timeout      = flag.Duration("timeout", 10*time.Second, "per-request timeout")
	)
	flag.Parse()

	p, err := resolveProfile(*url, *profileStore, *profileName)
	if err != nil {
		logging.Errorf("obsctl: %v", err)
		os.Exit(1)
	}

	sess := session.New(session.Options{
		URL:                p.URL(),
		Password:           p.Password,
		EventSubscriptions: protocol.SubscriptionAll,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := connectWithBackoff(ctx, sess); err != nil {
		logging.Errorf("obsctl: connect: %v", err)
		os.Exit(1)
	}
	defer sess.Close()

	if *subscribe != "" {
		runSubscriber(ctx, sess, *subscribe)
		return
	}

	if err := runRequest(ctx, sess, *requestType, *requestData, *timeout); err != nil {
		logging.Errorf("obsctl: %v", err)
		os.Exit(1)
	}
}

func resolveProfile(url, storePath, name string) (profile.Profile, error) {
	if url != "" {
		return profile.ParseURL(url)
	}
	store, err := profile.LoadStore(storePath)
	if err != nil {
		return profile.Profile{}, err
	}
	p, ok := store.Get(name)
	if !ok {
		return profile.Profile{}, fmt.Errorf("obsctl: profile %q not found in %s", name, storePath)
	}
	return p, nil
}

// connectWithBackoff retries Connect with exponential backoff, the
// policy the engine documents but does not itself enforce.
func connectWithBackoff(ctx context.Context, sess *session.Session) error {
	cfg := session.DefaultBackoff()
	rng := rand.New(rand.NewSource(1))
	var lastErr error
	for attempt := 1; attempt <= 5; attempt++ {
		if err := sess.Connect(ctx); err == nil {
			return nil
		} else {
			lastErr = err
			logging.Warnf("obsctl: connect attempt %d failed: %v", attempt, err)
		}
		delay := session.NextBackoffDelay(cfg, attempt, rng)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("obsctl: giving up after retries: %w", lastErr)
}

func runRequest(ctx context.Context, sess *session.Session, requestType, rawData string, timeout time.Duration) error {
	var data map[string]any
	if err := json.Unmarshal([]byte(rawData), &data); err != nil {
		return fmt.Errorf("parsing -data: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := sess.Request(ctx, requestType, data)
	if err != nil {
		return fmt.Errorf("request %s: %w", requestType, err)
	}
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func runSubscriber(ctx context.Context, sess *session.Session, eventType string) {
	ch, unsub := sess.Events().All(eventType)
	defer unsub()

	logging.Infof("obsctl: subscribed to %s, waiting for events", eventType)
	for {
		select {
		case d, ok := <-ch:
			if !ok {
				return
			}
			if d.Err != nil {
				logging.Errorf("obsctl: decoding %s: %v", eventType, d.Err)
				continue
			}
			encoded, _ := json.Marshal(d.Payload)
			fmt.Println(string(encoded))
		case <-ctx.Done():
			return
		}
	}
}

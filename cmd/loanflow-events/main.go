// Command loanflow-events tails the conversation events topic and prints each
// event to stdout. Intended for local debugging and demo sessions.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/veritasfin/loanflow/pkg/kafka"
	"github.com/veritasfin/loanflow/pkg/observability"
)

func main() {
	var (
		brokers = flag.String("brokers", envOr("KAFKA_BROKERS", "localhost:9092"), "comma-separated broker list")
		topic   = flag.String("topic", "loanflow.conversation.events", "topic to tail")
		group   = flag.String("group", "loanflow-events-tail", "consumer group id")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  envOr("LOG_LEVEL", "info"),
		Format: "text",
	})

	consumer := kafka.NewConsumer(
		kafka.Config{
			Brokers:       strings.Split(*brokers, ","),
			ConsumerGroup: *group,
		},
		*topic,
		printEvent,
		logger,
	)
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
}

func printEvent(_ context.Context, msg kafka.Message) error {
	var payload map[string]any
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		// Not JSON; dump raw.
		fmt.Printf("%s  %s  %s\n", msg.Headers["event_type"], msg.Key, msg.Value)
		return nil
	}

	pretty, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	fmt.Printf("%s  conversation=%s  %s\n", msg.Headers["event_type"], msg.Key, pretty)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

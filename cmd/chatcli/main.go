package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"nailaide-be/internal/bootstrap"
	"nailaide-be/internal/config"
	"nailaide-be/internal/dto"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Interactive console client that drives the agent in-process, useful
// for exercising the pipeline without starting the HTTP server.
func main() {
	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	userId := "cli-" + uuid.NewString()

	color.Cyan("💅 NailAide console — type a message, 'reset' to clear context, 'exit' to quit\n")
	color.Cyan("Session user: %s\n", userId)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "exit", "quit":
			color.Cyan("Bye!")
			return
		case "reset":
			if container.AgentService.ClearContext(userId) {
				color.Yellow("Context cleared")
			} else {
				color.Yellow("No context to clear")
			}
			continue
		}

		res, err := container.AgentService.ProcessMessage(context.Background(), &dto.ChatMessageRequest{
			UserId:  userId,
			Message: line,
		})
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		color.Green("AI: %s", res.Text)
		color.Yellow("   intent=%s confidence=%.2f", res.Intent, res.Confidence)
		for _, action := range res.Actions {
			color.Yellow("   action: %s", action.Type)
		}
	}
}

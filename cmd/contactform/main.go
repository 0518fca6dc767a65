package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"contactform/internal/config"
	"contactform/internal/form"
	"contactform/internal/logging"
	"contactform/internal/submit"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	logging.Configure(&logging.Config{
		Level:      "info",
		File:       "~/.contactform/client.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})

	logger = logging.GetLogger()
}

var rootCmd = &cobra.Command{
	Use:   "contactform",
	Short: "Contact form client",
	Long: `Contact form client that validates a name, email and message and
submits them to the configured send-email endpoint.`,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Validate and send a contact form message",
	Long: `Validate and send a contact form message.

Fields not passed as flags are read interactively.

Example:
  contactform send --name "Ana Silva" --email ana@example.com --message "Olá, gostaria de saber mais."`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logger.Error("Error loading config: %v", err)
			os.Exit(1)
		}

		if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
			cfg.Endpoint = endpoint
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")

		reader := bufio.NewReader(os.Stdin)
		if name == "" {
			name = promptLine(reader, "Name")
		}
		if email == "" {
			email = promptLine(reader, "Email")
		}
		if message == "" {
			message = promptLine(reader, "Message")
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		sender := submit.NewHTTPSender(cfg.Endpoint, cfg.HTTPTimeout)
		controller := submit.NewController(sender, cfg.StatusTTL, logger)
		defer controller.Close()

		controller.SetField(form.FieldName, name)
		controller.SetField(form.FieldEmail, email)
		controller.SetField(form.FieldMessage, message)

		// Spinner while the submission is in flight
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Sending message..."
		s.Start()
		err = controller.Submit(ctx)
		s.Stop()

		if errors.Is(err, submit.ErrInvalid) {
			fmt.Println("Please fix the following fields:")
			for _, field := range []string{form.FieldName, form.FieldEmail, form.FieldMessage} {
				if msg, ok := controller.FieldErrors()[field]; ok {
					fmt.Printf("  %s: %s\n", field, msg)
				}
			}
			os.Exit(1)
		}

		status, ok := controller.Status()
		if !ok {
			logger.Error("Submission finished without a status: %v", err)
			os.Exit(1)
		}

		fmt.Println(status.Message)
		if !status.Success {
			logger.Error("Submission failed: %v", err)
			os.Exit(1)
		}
	},
}

func promptLine(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	sendCmd.Flags().String("name", "", "Your name")
	sendCmd.Flags().String("email", "", "Your email address")
	sendCmd.Flags().String("message", "", "The message to send")
	sendCmd.Flags().String("endpoint", "", "Override the send-email endpoint URL")

	rootCmd.AddCommand(sendCmd)
}

func main() {
	initLogger()
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

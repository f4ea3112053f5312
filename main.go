package main

import (
	"context"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/crypto-chatbot/src/chatbot"
	"github.com/jiaming2012/crypto-chatbot/src/coingecko"
	"github.com/jiaming2012/crypto-chatbot/src/config"
	"github.com/jiaming2012/crypto-chatbot/src/utils"
)

type RunArgs struct {
	ConfigPath string
	BaseURL    string
	Timeout    time.Duration
	LogLevel   string
	GoEnv      string
}

var rootCmd = &cobra.Command{
	Use:   "crypto-chatbot",
	Short: "Interactive chatbot for CoinGecko market data",
	Long:  "An interactive terminal chatbot that answers price, ranking, trending, comparison and global market questions using the CoinGecko public API.",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		baseURL, err := cmd.Flags().GetString("base-url")
		if err != nil {
			log.Fatalf("error getting base-url: %v", err)
		}

		timeout, err := cmd.Flags().GetDuration("timeout")
		if err != nil {
			log.Fatalf("error getting timeout: %v", err)
		}

		logLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			log.Fatalf("error getting log-level: %v", err)
		}

		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := Run(RunArgs{
			ConfigPath: configPath,
			BaseURL:    baseURL,
			Timeout:    timeout,
			LogLevel:   logLevel,
			GoEnv:      goEnv,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return err
	}

	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return err
	}

	// flags override file and environment settings
	cfg.ApplyFlags(args.BaseURL, args.Timeout, args.LogLevel)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	client := coingecko.NewClient(cfg.BaseURL, cfg.Timeout())
	bot := chatbot.NewBot(client, cfg.DefaultCurrency, cfg.DefaultTopN, os.Stdin, os.Stdout)

	return bot.Run(context.Background())
}

func main() {
	rootCmd.Flags().String("config", "", "path to an optional YAML config file")
	rootCmd.Flags().String("base-url", "", "CoinGecko API base URL override")
	rootCmd.Flags().Duration("timeout", 0, "HTTP timeout per API request")
	rootCmd.Flags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.Flags().String("go-env", "development", "environment to load .env files for")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error executing root command: %v", err)
	}
}

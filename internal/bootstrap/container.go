package bootstrap

import (
	"context"
	"log"

	"ai-proposal-be/internal/config"
	"ai-proposal-be/internal/controller"
	"ai-proposal-be/internal/pkg/logger"
	"ai-proposal-be/internal/repository/memory"
	"ai-proposal-be/internal/service"
	"ai-proposal-be/internal/websocket"
	"ai-proposal-be/pkg/llm/factory"
	"ai-proposal-be/pkg/proposal/analyze"
	"ai-proposal-be/pkg/proposal/collect"
	"ai-proposal-be/pkg/proposal/generate"
)

type Container struct {
	// Controllers
	ProposalController controller.IProposalController

	// WebSockets
	WebSocketHub *websocket.Hub

	// Exposed for shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(context.Background(), cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	// 3. In-Memory Session Storage
	conversationRepo := memory.NewConversationRepository()

	// 4. WebSocket Hub (isolated log to keep main logs clean)
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	hub := websocket.NewHub(wsLogger)
	go hub.Run()

	// 5. Domain components
	generator := generate.NewGenerator(llmProvider, sysLogger)
	analyzer := analyze.NewAnalyzer(llmProvider, sysLogger)
	machine := collect.NewMachine(sysLogger)

	proposalService := service.NewProposalService(
		conversationRepo,
		generator,
		analyzer,
		machine,
		hub,
		sysLogger,
	)

	return &Container{
		ProposalController: controller.NewProposalController(proposalService),
		WebSocketHub:       hub,
		Logger:             sysLogger,
	}
}

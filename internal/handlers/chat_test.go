package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"contexta/internal/handlers"
	"contexta/internal/llm"
	"contexta/internal/service"
	"contexta/internal/service/mocks"
)

const testSession = "11111111-2222-3333-4444-555555555555"

func TestChatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockChatService(ctrl)

	chatService.EXPECT().
		ProcessTurn(gomock.Any(), testSession, "How do refunds work?").
		Return(service.TurnResult{
			SessionID:   testSession,
			UserMessage: "How do refunds work?",
			BotReply:    "Within five days.",
			PreviousMessages: []llm.Message{
				{Role: "user", Content: "How do refunds work?"},
				{Role: "assistant", Content: "Within five days."},
			},
		}, nil)

	handler := handlers.NewChatHandler(chatService)

	body, _ := json.Marshal(handlers.ChatRequest{SessionID: testSession, Message: "How do refunds work?"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp handlers.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.BotReply != "Within five days." {
		t.Errorf("unexpected reply: %q", resp.BotReply)
	}
	if len(resp.PreviousMessages) != 2 {
		t.Errorf("expected 2 previous messages, got %d", len(resp.PreviousMessages))
	}
}

func TestChatHandlerInvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockChatService(ctrl)

	handler := handlers.NewChatHandler(chatService)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatHandlerValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockChatService(ctrl)

	chatService.EXPECT().
		ProcessTurn(gomock.Any(), testSession, "").
		Return(service.TurnResult{}, &service.ValidationError{Field: "message", Message: "cannot be empty"})

	handler := handlers.NewChatHandler(chatService)

	body, _ := json.Marshal(handlers.ChatRequest{SessionID: testSession})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChatHandlerServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockChatService(ctrl)

	chatService.EXPECT().
		ProcessTurn(gomock.Any(), testSession, "hello").
		Return(service.TurnResult{}, errors.New("completion failed"))

	handler := handlers.NewChatHandler(chatService)

	body, _ := json.Marshal(handlers.ChatRequest{SessionID: testSession, Message: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestChatHandlerUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatService := mocks.NewMockChatService(ctrl)

	chatService.EXPECT().
		ProcessTurn(gomock.Any(), testSession, "hello").
		Return(service.TurnResult{}, fmt.Errorf("failed to generate reply: %w", service.ErrExternalService))

	handler := handlers.NewChatHandler(chatService)

	body, _ := json.Marshal(handlers.ChatRequest{SessionID: testSession, Message: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

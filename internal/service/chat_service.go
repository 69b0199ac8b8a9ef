package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/internal/constant"
	"collegeplan-be/internal/dto"
	"collegeplan-be/internal/entity"
	"collegeplan-be/internal/pkg/logger"
	"collegeplan-be/internal/repository/specification"
	"collegeplan-be/internal/repository/unitofwork"
	"collegeplan-be/pkg/llm"

	"github.com/google/uuid"
)

const titleMaxLen = 30

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	ListMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	RenameSession(ctx context.Context, userId uuid.UUID, req *dto.RenameSessionRequest) (*dto.ChatSessionResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	ai               llm.Provider
	advisorService   IAdvisorService
	publisherService IPublisherService
	logger           logger.ILogger
	uploadDir        string

	// Per-session locks serialize concurrent SendMessage calls against the
	// same session so turns cannot interleave.
	sessionLocks map[uuid.UUID]*sync.Mutex
	locksMu      sync.Mutex
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	ai llm.Provider,
	advisorService IAdvisorService,
	publisherService IPublisherService,
	log logger.ILogger,
	uploadDir string,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		ai:               ai,
		advisorService:   advisorService,
		publisherService: publisherService,
		logger:           log,
		uploadDir:        uploadDir,
		sessionLocks:     make(map[uuid.UUID]*sync.Mutex),
	}
}

func toChatSessionResponse(s *entity.ChatSession) *dto.ChatSessionResponse {
	updatedAt := s.UpdatedAt
	return &dto.ChatSessionResponse{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: &updatedAt,
	}
}

func toChatMessageResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	attachments := make([]dto.AttachmentDTO, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		attachments = append(attachments, dto.AttachmentDTO{
			Filename:    a.Filename,
			URL:         a.URL,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}
	return &dto.ChatMessageResponse{
		Id:          m.Id,
		SessionId:   m.SessionId,
		Content:     m.Content,
		Sender:      m.Sender,
		Attachments: attachments,
		CreatedAt:   m.CreatedAt,
	}
}

// NormalizeMessageContent strips the literal trailing "..." that client-side
// truncation previews leave behind. A message that was nothing but the
// artifact is kept as sent.
func NormalizeMessageContent(raw string) string {
	content := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "..."))
	if content == "" {
		return strings.TrimSpace(raw)
	}
	return content
}

// DeriveSessionTitle truncates the first message to the title limit, adding
// an ellipsis only when something was cut.
func DeriveSessionTitle(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return constant.DefaultSessionTitle
	}
	runes := []rune(trimmed)
	if len(runes) <= titleMaxLen {
		return trimmed
	}
	return strings.TrimSpace(string(runes[:titleMaxLen])) + "..."
}

// AppendSources renders web-search citations as a numbered Markdown section
// embedded in the response text.
func AppendSources(text string, citations []llm.Citation) string {
	if len(citations) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n**Sources:**\n")
	for i, c := range citations {
		title := c.Title
		if title == "" {
			title = c.URL
		}
		fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, title, c.URL)
		if c.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", c.Snippet)
		}
	}
	return b.String()
}

func (s *chatService) lockSession(id uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.sessionLocks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.sessionLocks[id] = mu
	}
	return mu
}

func (s *chatService) releaseSessionLock(id uuid.UUID) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	delete(s.sessionLocks, id)
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	title := req.Title
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	chatSession := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, chatSession); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toChatSessionResponse(chatSession), nil
}

func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The title and the stored message both come from the cleaned content,
	// never the raw request.
	content := NormalizeMessageContent(req.Content)

	// Resolve or create the session.
	var chatSession *entity.ChatSession
	if req.SessionId != nil {
		found, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: *req.SessionId})
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		if found == nil {
			return nil, apperrors.NewNotFound("chat session not found")
		}
		if found.UserId != userId {
			return nil, apperrors.NewForbidden("chat session belongs to another user")
		}
		chatSession = found
	} else {
		chatSession = &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     DeriveSessionTitle(content),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.ChatSessionRepository().Create(ctx, chatSession); err != nil {
			return nil, apperrors.NewInternal(err)
		}
	}

	mu := s.lockSession(chatSession.Id)
	mu.Lock()
	defer mu.Unlock()

	// First message into a default-titled session takes over the title.
	messageCount, err := uow.ChatMessageRepository().Count(ctx, specification.BySessionID{SessionID: chatSession.Id})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if messageCount == 0 && chatSession.Title == constant.DefaultSessionTitle {
		chatSession.Title = DeriveSessionTitle(content)
		if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
			return nil, apperrors.NewInternal(err)
		}
	}

	// Load the history before persisting the new turn.
	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: chatSession.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	attachments := make([]entity.Attachment, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, entity.Attachment{
			Filename:    a.Filename,
			URL:         a.URL,
			ContentType: a.ContentType,
			Size:        a.Size,
		})
	}

	// The user message is durable before the AI is involved and is never
	// rolled back, whatever happens downstream.
	userMessage := &entity.ChatMessage{
		Id:          uuid.New(),
		SessionId:   chatSession.Id,
		Content:     content,
		Sender:      constant.ChatSenderUser,
		Attachments: attachments,
		CreatedAt:   time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if err := uow.ChatSessionRepository().Touch(ctx, chatSession.Id); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	if len(req.ShareWithAdvisorIds) > 0 {
		for _, advisorId := range req.ShareWithAdvisorIds {
			shareReq := &dto.ShareSessionsRequest{AdvisorId: advisorId, SessionIds: []uuid.UUID{chatSession.Id}}
			if err := s.advisorService.ShareSessions(ctx, userId, shareReq); err != nil {
				s.logger.Warn("ChatService", "Failed to share session with advisor", map[string]interface{}{
					"advisor_id": advisorId,
					"session_id": chatSession.Id,
					"error":      err.Error(),
				})
			}
		}
	}

	response := &dto.SendMessageResponse{
		SessionId:   chatSession.Id,
		UserMessage: toChatMessageResponse(userMessage),
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		response.AiError = "failed to load user profile"
		return response, nil
	}

	result, aiErr := s.generateReply(ctx, user, history, content, req)
	if aiErr != nil {
		s.logger.Error("ChatService", "AI reply failed", map[string]interface{}{
			"session_id": chatSession.Id,
			"error":      aiErr.Error(),
		})
		response.AiError = aiReplyErrorMessage(aiErr)
		return response, nil
	}

	aiText := AppendSources(result.Text, result.Citations)
	aiMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: chatSession.Id,
		Content:   aiText,
		Sender:    constant.ChatSenderAI,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, aiMessage); err != nil {
		response.AiError = "failed to store AI reply"
		return response, nil
	}
	if err := uow.ChatSessionRepository().Touch(ctx, chatSession.Id); err != nil {
		s.logger.Warn("ChatService", "Failed to bump session timestamp", map[string]interface{}{
			"session_id": chatSession.Id,
			"error":      err.Error(),
		})
	}

	response.AiMessage = toChatMessageResponse(aiMessage)
	response.SearchQueries = result.SearchQueries

	// Profile drift check. Failures here are logged and swallowed; they must
	// never fail the chat turn.
	if user.ProfileDescription != nil && *user.ProfileDescription != "" {
		response.ProfileUpdated = s.maybeUpdateProfile(ctx, uow, user, chatSession.Id, content)
	}

	return response, nil
}

func aiReplyErrorMessage(err error) string {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.Message
	}
	return "AI provider request failed"
}

func (s *chatService) generateReply(ctx context.Context, user *entity.User, history []*entity.ChatMessage, content string, req *dto.SendMessageRequest) (*llm.GenerateResult, error) {
	profile := "No profile description yet."
	if user.ProfileDescription != nil && *user.ProfileDescription != "" {
		profile = *user.ProfileDescription
	}
	systemPrompt := fmt.Sprintf(constant.CounselorSystemPromptV1, profile)

	llmHistory := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Sender == constant.ChatSenderAI {
			role = "assistant"
		}
		llmHistory = append(llmHistory, llm.Message{Role: role, Content: m.Content})
	}

	llmAttachments, err := s.loadAttachments(req.Attachments)
	if err != nil {
		return nil, apperrors.NewUpstream("failed to read attachment", err)
	}

	result, err := s.ai.Generate(ctx, llm.GenerateRequest{
		SystemPrompt:      systemPrompt,
		History:           llmHistory,
		Prompt:            content,
		Attachments:       llmAttachments,
		WebSearch:         req.UseWebSearch,
		ExtendedReasoning: req.ExtendThinking,
	})
	if err != nil {
		return nil, wrapAIError(err)
	}
	return result, nil
}

// loadAttachments reads stored files back into memory for inlining into the
// AI call. Only files inside the upload directory are reachable.
func (s *chatService) loadAttachments(attachments []dto.AttachmentDTO) ([]llm.Attachment, error) {
	out := make([]llm.Attachment, 0, len(attachments))
	for _, a := range attachments {
		name := filepath.Base(a.URL)
		data, err := os.ReadFile(filepath.Join(s.uploadDir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, llm.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Data:        data,
		})
	}
	return out, nil
}

func (s *chatService) maybeUpdateProfile(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, sessionId uuid.UUID, content string) bool {
	prompt := fmt.Sprintf(constant.ProfileUpdatePromptV1, *user.ProfileDescription, content)

	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Warn("ChatService", "Profile update check failed", map[string]interface{}{"error": err.Error()})
		return false
	}

	updated := strings.TrimSpace(text)
	if updated == "" || strings.EqualFold(updated, constant.ProfileNoChange) {
		return false
	}

	if err := uow.UserRepository().UpdateProfileDescription(ctx, user.Id, updated); err != nil {
		s.logger.Warn("ChatService", "Failed to persist updated profile", map[string]interface{}{"error": err.Error()})
		return false
	}

	if s.publisherService != nil {
		payload, _ := json.Marshal(dto.ProfileActivityMessage{
			UserId:    user.Id,
			SessionId: sessionId,
			Detail:    "Profile description updated from chat",
		})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("ChatService", "Failed to publish profile activity", map[string]interface{}{"error": err.Error()})
		}
	}
	return true
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	out := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, cs := range sessions {
		out = append(out, toChatSessionResponse(cs))
	}
	return out, nil
}

func (s *chatService) ListMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if chatSession == nil {
		return nil, apperrors.NewNotFound("chat session not found")
	}
	if chatSession.UserId != userId {
		return nil, apperrors.NewForbidden("chat session belongs to another user")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	out := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toChatMessageResponse(m))
	}
	return out, nil
}

func (s *chatService) RenameSession(ctx context.Context, userId uuid.UUID, req *dto.RenameSessionRequest) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if chatSession == nil {
		return nil, apperrors.NewNotFound("chat session not found")
	}
	if chatSession.UserId != userId {
		return nil, apperrors.NewForbidden("chat session belongs to another user")
	}

	chatSession.Title = req.Title
	chatSession.UpdatedAt = time.Now()
	if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return toChatSessionResponse(chatSession), nil
}

// DeleteSession removes the session, all of its messages, and any share
// junctions pointing at it.
func (s *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if chatSession == nil {
		return apperrors.NewNotFound("chat session not found")
	}
	if chatSession.UserId != userId {
		return apperrors.NewForbidden("chat session belongs to another user")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperrors.NewInternal(err)
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return apperrors.NewInternal(err)
	}
	if err := uow.SharedChatSessionRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return apperrors.NewInternal(err)
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return apperrors.NewInternal(err)
	}

	if err := uow.Commit(); err != nil {
		return apperrors.NewInternal(err)
	}
	s.releaseSessionLock(sessionId)
	return nil
}

func (s *chatService) SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.SubmitFeedbackRequest) (*dto.FeedbackResponse, error) {
	if req.IsPositive == nil {
		return nil, apperrors.NewValidation("is_positive is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	feedback := &entity.MessageFeedback{
		Id:             uuid.New(),
		UserId:         userId,
		MessageId:      req.MessageId,
		MessageContent: req.MessageContent,
		IsPositive:     *req.IsPositive,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageFeedbackRepository().Create(ctx, feedback); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	return &dto.FeedbackResponse{
		Id:         feedback.Id,
		MessageId:  feedback.MessageId,
		IsPositive: feedback.IsPositive,
		CreatedAt:  feedback.CreatedAt,
	}, nil
}

package wizard

import (
	"context"
	"encoding/json"
	"fmt"

	"menagio/models"
	"menagio/utils"

	"github.com/google/uuid"
)

// SaveQuickBookDraft stores a partial draft written by the marketing page's
// quick-booking form and returns the token the wizard uses to claim it.
func SaveQuickBookDraft(ctx context.Context, draft models.BookingDraft) (string, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("failed to marshal quick-book draft: %w", err)
	}
	token := uuid.New().String()
	client := utils.GetDraftCacheClient()
	if err := client.Set(ctx, utils.DraftHandoffPrefix+token, data, utils.DraftHandoffTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store quick-book draft: %w", err)
	}
	return token, nil
}

// ClaimQuickBookDraft reads a handed-off draft exactly once and deletes it.
func ClaimQuickBookDraft(ctx context.Context, token string) (*models.BookingDraft, error) {
	client := utils.GetDraftCacheClient()
	key := utils.DraftHandoffPrefix + token

	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("quick-book draft not found or expired: %w", err)
	}
	client.Del(ctx, key)

	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse quick-book draft: %w", err)
	}
	return &draft, nil
}

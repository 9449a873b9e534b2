package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjp009/affiliate-tracker/internal/models"
)

// TestPartnerOptions_Placeholder первая опция всегда заглушка с пустым значением
func TestPartnerOptions_Placeholder(t *testing.T) {
	options := PartnerOptions(nil, "All Partners", "")

	require.Len(t, options, 1)
	assert.Equal(t, "", options[0].Value)
	assert.Equal(t, "All Partners", options[0].Label)
	assert.True(t, options[0].Selected)
}

// TestPartnerOptions_Labels метка партнёра содержит имя и платформу
func TestPartnerOptions_Labels(t *testing.T) {
	partners := []models.Partner{
		{ID: 1, Name: "Tech Blog", Platform: "blog"},
		{ID: 2, Name: "Insta Shop", Platform: "instagram"},
	}

	options := PartnerOptions(partners, "Select Partner", "2")

	require.Len(t, options, 3)
	assert.Equal(t, "Tech Blog (blog)", options[1].Label)
	assert.Equal(t, "1", options[1].Value)
	assert.False(t, options[0].Selected)
	assert.True(t, options[2].Selected)
}

// TestLinkOptions_Labels метка ссылки: бренд и продукт, без продукта - General
func TestLinkOptions_Labels(t *testing.T) {
	product := "Echo Dot"
	links := []models.Link{
		{ID: 1, BrandName: "Amazon", ProductName: &product},
		{ID: 2, BrandName: "eBay"},
	}

	options := LinkOptions(links, "Select Link", "")

	require.Len(t, options, 3)
	assert.Equal(t, "Amazon - Echo Dot", options[1].Label)
	assert.Equal(t, "eBay - General", options[2].Label)
}

// TestStatusOptions фильтр по статусу с заглушкой "все"
func TestStatusOptions(t *testing.T) {
	options := StatusOptions([]string{"active", "inactive"}, "All Statuses", "inactive")

	require.Len(t, options, 3)
	assert.Equal(t, "All Statuses", options[0].Label)
	assert.False(t, options[0].Selected)
	assert.True(t, options[2].Selected)
}

// TestPartnerOptions_RebuiltAfterDeletion пикер пересобирается без удалённого партнёра
func TestPartnerOptions_RebuiltAfterDeletion(t *testing.T) {
	partners := []models.Partner{
		{ID: 1, Name: "Tech Blog", Platform: "blog"},
		{ID: 2, Name: "Insta Shop", Platform: "instagram"},
	}

	before := PartnerOptions(partners, "Select Partner", "")
	require.Len(t, before, 3)

	// Партнёр 1 удалён, кэш перезагружен
	after := PartnerOptions(partners[1:], "Select Partner", "")
	require.Len(t, after, 2)
	assert.Equal(t, "2", after[1].Value)
}

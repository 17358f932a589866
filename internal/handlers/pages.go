// internal/handlers/pages.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Neha-Singh-j/E-commerce/internal/utils"
)

// PageHandler serves the informational page payloads. Content is static
// and rendered client-side.
type PageHandler struct {
	pages map[string]gin.H
}

func NewPageHandler() *PageHandler {
	return &PageHandler{
		pages: map[string]gin.H{
			"about": {
				"title": "About Us",
				"body":  "Shopiko is a community marketplace where independent sellers list their products and buyers shop across every category in one place.",
			},
			"contact": {
				"title": "Contact Us",
				"body":  "Questions or issues with an order? Reach us at support@shopiko.example and we will get back to you within one business day.",
			},
			"faq": {
				"title": "Frequently Asked Questions",
				"body":  "Answers about ordering, payments, seller accounts, and returns.",
			},
			"events": {
				"title": "Events",
				"body":  "Seasonal sales and seller showcases are announced here.",
			},
			"feedback": {
				"title": "Feedback",
				"body":  "Tell us what works and what does not. Product feedback shapes what we build next.",
			},
			"account": {
				"title": "Your Account",
				"body":  "Manage your profile, orders, and wishlist from the account dashboard.",
			},
		},
	}
}

// GET /pages/:slug
func (h *PageHandler) GetPage(c *gin.Context) {
	page, ok := h.pages[c.Param("slug")]
	if !ok {
		utils.NotFoundResponse(c, "Page")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"page": page,
	})
}

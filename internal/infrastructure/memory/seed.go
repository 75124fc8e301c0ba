package memory

import (
	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

func seedProduct(id, title, description, amount, category, image string) domain.Product {
	return domain.Product{
		ID:          id,
		Title:       title,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Currency:    "AUD",
		Category:    category,
		Image:       image,
	}
}

// SeedProducts returns the storefront's default catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		seedProduct("1", "Mechanical Gaming Keyboard", "RGB backlit, Cherry MX Blue switches, Full size", "129.99", "keyboard", "/images/keyboard.jpg"),
		seedProduct("2", "Wireless Gaming Mouse", "25K DPI, RGB, 7 programmable buttons", "89.99", "mouse", "/images/mouse.jpg"),
		seedProduct("3", "Gaming Headset", "7.1 Surround Sound, Noise Cancelling Mic", "149.99", "audio", "/images/headset.jpg"),
		seedProduct("4", "4K Gaming Monitor", "27-inch, 144Hz, 1ms response time, HDR", "599.99", "monitor", "/images/monitor.jpg"),
		seedProduct("5", "Gaming Mouse Pad", "XL size, RGB edges, Anti-slip base", "39.99", "accessories", "/images/mousepad.jpg"),
		seedProduct("6", "Webcam 4K", "Auto focus, Built-in mic, Privacy cover", "199.99", "camera", "/images/webcam.jpg"),
		seedProduct("7", "USB Microphone", "Studio quality, RGB lighting, Plug & Play", "159.99", "audio", "/images/microphone.jpg"),
		seedProduct("8", "Mechanical Numpad", "Cherry MX Brown switches, Programmable", "49.99", "keyboard", "/images/numpad.jpg"),
		seedProduct("9", "Gaming Controller", "Wireless, Rechargeable, Compatible with PC/Console", "79.99", "controller", "/images/controller.jpg"),
		seedProduct("10", "Capture Card", "1080p 60fps, USB 3.0, Low latency", "169.99", "streaming", "/images/capture-card.jpg"),
		seedProduct("11", "Stream Deck", "15 LCD keys, Customizable buttons", "249.99", "streaming", "/images/stream-deck.jpg"),
		seedProduct("12", "Gaming Chair", "Ergonomic design, Lumbar support, Reclining", "299.99", "furniture", "/images/gaming-chair.jpg"),
		seedProduct("13", "Desk Mat", "900x400mm, Water-resistant, Non-slip", "34.99", "accessories", "/images/desk-mat.jpg"),
		seedProduct("14", "Cable Management Kit", "Sleeves, Clips, and Ties, Complete set", "29.99", "accessories", "/images/cable-kit.jpg"),
		seedProduct("15", "Monitor Stand", "Dual monitor, Adjustable height, Cable management", "89.99", "accessories", "/images/monitor-stand.jpg"),
	}
}

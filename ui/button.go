package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	buttonType string
	class      string
	attributes []g.Node
}

// withHref renders the button as a link
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

func buttonStyled(text, baseClass string, options ...buttonOption) g.Node {
	cfg := &buttonConfig{buttonType: "button"}
	for _, option := range options {
		option(cfg)
	}

	class := baseClass
	if cfg.class != "" {
		class += " " + cfg.class
	}

	attrs := []g.Node{Class(class)}
	attrs = append(attrs, cfg.attributes...)
	attrs = append(attrs, g.Text(text))

	if cfg.href != "" {
		return A(append([]g.Node{Href(cfg.href)}, attrs...)...)
	}
	return Button(append([]g.Node{Type(cfg.buttonType)}, attrs...)...)
}

// button is the primary call to action (blue background)
func button(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded-lg inline-block font-semibold bg-blue-600 text-white hover:bg-blue-700", options...)
}

// buttonSecondary is an outlined button for secondary actions
func buttonSecondary(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded-lg inline-block border border-gray-300 text-gray-700 hover:bg-gray-100", options...)
}

func buttonDanger(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded-lg inline-block bg-red-500 text-white hover:bg-red-600", options...)
}

package notifications

import (
	"github.com/thenoetrevino/shsenroll/internal/config"
	"github.com/thenoetrevino/shsenroll/internal/services/student"
)

type style struct {
	icon             string
	foreground       string
	background       string
	borderForeground string
}

func styleFor(kind student.Kind, colors config.ColorScheme) style {
	switch kind {
	case student.KindWarning:
		return style{
			icon:             "⚠",
			foreground:       colors.WarningFg,
			background:       colors.WarningBg,
			borderForeground: colors.WarningBg,
		}
	case student.KindError:
		return style{
			icon:             "✕",
			foreground:       colors.ErrorFg,
			background:       colors.ErrorBg,
			borderForeground: colors.ErrorBg,
		}
	default:
		return style{
			icon:             "🔔",
			foreground:       colors.InfoFg,
			background:       colors.InfoBg,
			borderForeground: colors.InfoBg,
		}
	}
}

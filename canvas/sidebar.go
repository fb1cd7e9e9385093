package canvas

import "github.com/ha1tch/rix3l/layout"

// NewSidebar builds the sidebar buttons and stacks them below the preview.
func NewSidebar(cfg Config, measure Measure) []*Button {
	pad := cfg.ButtonPadding
	clearBtn := NewButton(ClearButton, "clear", cfg.FontSize, Point{}, pad, measure, cfg.Theme)
	label := NewButton(LabelButton, cfg.Title, cfg.FontSize, Point{}, pad, measure, cfg.Theme)

	// Button sizes exclude padding, so the spacers carry it.
	top := cfg.PreviewOrigin.Y + cfg.PreviewLen + cfg.PreviewOrigin.Y
	widgets := []layout.Widget{
		layout.NewSpacerWidget(layout.NewSpacer().WithY(top)),
		clearBtn.Widget(),
		layout.NewSpacerWidget(layout.NewSpacer().WithY(2*pad.Y + cfg.ButtonGap)),
		label.Widget(),
	}
	edges := layout.LeadingEdges(widgets, layout.ArrangeVertically(widgets), layout.Vertical)

	clearBtn.MoveTo(Point{X: cfg.SidebarX, Y: edges[1]})
	label.MoveTo(Point{X: cfg.SidebarX, Y: edges[3]})
	return []*Button{clearBtn, label}
}

package screen

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/kongclimb/common"
	"golang.org/x/image/font/basicfont"
)

type Button struct {
	Label   string
	OnClick func()
}

// Menu is a centered panel with a title, an optional info line and a column
// of buttons. Enter or Space activates the first button.
type Menu struct {
	Title string
	// Info is polled every frame for the line under the title.
	Info    func() string
	Buttons []Button
	// Backdrop is drawn before the panel. Nil clears to black.
	Backdrop func(dst *ebiten.Image)

	ui   *ebitenui.UI
	info *widget.Text
}

func (m *Menu) Enter() {
	m.ui = m.build()
}

func (m *Menu) Update() error {
	if m.ui == nil {
		m.ui = m.build()
	}
	if m.info != nil && m.Info != nil {
		m.info.Label = m.Info()
	}
	m.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.Activate()
	}
	return nil
}

// Activate runs the first button's handler.
func (m *Menu) Activate() {
	if len(m.Buttons) == 0 || m.Buttons[0].OnClick == nil {
		return
	}
	m.Buttons[0].OnClick()
}

func (m *Menu) Draw(dst *ebiten.Image) {
	if m.Backdrop != nil {
		m.Backdrop(dst)
	} else {
		dst.Fill(color.Black)
	}
	if m.ui != nil {
		m.ui.Draw(dst)
	}
}

var (
	panelColor     = color.NRGBA{A: 200}
	buttonColor    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	buttonHover    = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	menuTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuTitleColor = color.NRGBA{R: 0xff, G: 0xd7, A: 0xff}
)

const menuButtonWidth = 180

func (m *Menu) build() *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(buttonHover),
		Pressed: imageui.NewNineSliceColor(buttonColor),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: menuTextColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(m.Title, &face, menuTitleColor),
		widget.TextOpts.WidgetOpts(center),
	))

	m.info = nil
	if m.Info != nil {
		m.info = widget.NewText(
			widget.TextOpts.Text(m.Info(), &face, menuTextColor),
			widget.TextOpts.WidgetOpts(center),
		)
		panel.AddChild(m.info)
	}

	for _, b := range m.Buttons {
		onClick := b.OnClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.Label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(menuButtonWidth, 0)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

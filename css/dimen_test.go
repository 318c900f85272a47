package css_test

import (
	"testing"

	"github.com/npillmayer/sx/css"
	"github.com/npillmayer/sx/style"
	"github.com/npillmayer/sx/style/rules"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %d", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(80)
	var p float64
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if p != 80 {
		t.Errorf("expected percentage to be 80, is %v", p)
	}
	if m := css.Em(2).Match(); m.IsKind(css.Percentage(1)) != nil {
		t.Errorf("expected em not to be of kind percentage")
	}
}

func TestDimenString(t *testing.T) {
	tests := []struct {
		d    css.DimenT
		want string
	}{
		{css.Auto(), "auto"},
		{css.Inherit(), "inherit"},
		{css.Initial(), "initial"},
		{css.JustDimen(dimen.PT * 10), "10pt"},
		{css.JustDimen(0), "0"},
		{css.Percentage(50), "50%"},
		{css.Em(1.5), "1.5em"},
		{css.Rem(2), "2rem"},
		{css.VW(100), "100vw"},
		{css.VH(50), "50vh"},
		{css.DimenT{}, ""},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("expected %#v to render as %q, is %q", tt.d, tt.want, got)
		}
	}
}

func TestDimenInStyleMap(t *testing.T) {
	r := rules.New(".x", style.M{
		{Key: "marginTop", Value: css.JustDimen(dimen.PT * 12)},
		{Key: "width", Value: css.Percentage(50)},
	}, "")
	if got := r.CSSText(); got != ".x { margin-top: 12pt; width: 50%; }" {
		t.Errorf("unexpected rule text %q", got)
	}
	r = rules.New(".x", style.M{{Key: "color", Value: "red"}, {Key: "width", Value: css.DimenT{}}}, "")
	if got := r.CSSText(); got != ".x { color: red; }" {
		t.Errorf("expected unset dimension to be skipped, have %q", got)
	}
}

package ndscene

import (
	"strings"
	"testing"
)

func TestFragmentPolarCamera(t *testing.T) {
	s := New(3)
	frag := s.Fragment()

	if !strings.Contains(frag, "<t:camera radius='3' theta-1='1' theta-2='1'/>") {
		t.Errorf("fragment missing 3D polar camera: %s", frag)
	}
	if !strings.Contains(frag, "<t:camera radius='2' theta-1='1.57'/>") {
		t.Errorf("fragment missing 2D polar camera: %s", frag)
	}
	if !strings.Contains(frag, "<t:camera mode='polar'/>") {
		t.Errorf("fragment missing mode camera: %s", frag)
	}
}

func TestFragmentCartesianCamera(t *testing.T) {
	s := New(3, WithMode(Cartesian))
	l := s.Layer(3)
	l.CartesianPosition.SetVec(0, 1)
	l.CartesianPosition.SetVec(1, 2)
	l.CartesianPosition.SetVec(2, 3)

	frag := s.Fragment()

	if !strings.Contains(frag, "<t:camera x='1' y='2' z='3'/>") {
		t.Errorf("fragment missing cartesian camera: %s", frag)
	}
	if !strings.Contains(frag, "<t:camera mode='cartesian'/>") {
		t.Errorf("fragment missing mode camera: %s", frag)
	}
	if strings.Contains(frag, "radius='2' theta-1") {
		t.Errorf("cartesian fragment should not emit polar camera fields: %s", frag)
	}
}

func TestFragmentOrderHighestFirst(t *testing.T) {
	s := New(4)
	frag := s.Fragment()

	cam4 := strings.Index(frag, "theta-3")
	cam3 := strings.Index(frag, "radius='3'")
	cam2 := strings.Index(frag, "radius='2' theta-1='1.57'/>")
	mode := strings.Index(frag, "mode='polar'")

	if cam4 < 0 || cam3 < 0 || cam2 < 0 || mode < 0 {
		t.Fatalf("fragment missing expected cameras: %s", frag)
	}
	if !(cam4 < cam3 && cam3 < cam2 && cam2 < mode) {
		t.Errorf("fragment order wrong (4D=%d, 3D=%d, 2D=%d, base=%d)", cam4, cam3, cam2, mode)
	}
}

func TestFragmentTransformPerDimension(t *testing.T) {
	s := New(2)
	s.Layer(2).Transform.Set(0, 1, 0.5)

	frag := s.Fragment()

	if !strings.Contains(frag, "<t:transformation e0-0='1' e0-1='0.5'") {
		t.Errorf("fragment missing transform cells: %s", frag)
	}
	// 2D transform carries exactly 9 cell attributes.
	if !strings.Contains(frag, "e2-2='1'/>") {
		t.Errorf("fragment transform should end at e2-2: %s", frag)
	}
}

func TestFragmentBaseFields(t *testing.T) {
	s := New(2, WithIDPrefix("p-"))
	frag := s.Fragment()

	for _, want := range []string{
		"<t:options radius='1' minor-radius='0.5' constant='0.9' id-prefix='p-'/>",
		"<t:precision polar='10' export-multiplier='2'/>",
		"<t:colour-background red='0.45' green='0.45' blue='0.65' alpha='1'/>",
		"<t:colour-wireframe red='1' green='1' blue='1' alpha='1'/>",
		"<t:colour-surface red='1' green='1' blue='1' alpha='0.1'/>",
		"<t:ifs iterations='4' seed='0' functions='3' pre-rotate='yes' post-rotate='no'/>",
		"<t:flame coefficients='3'/>",
	} {
		if !strings.Contains(frag, want) {
			t.Errorf("fragment missing %q:\n%s", want, frag)
		}
	}
}

func TestFragmentModelDescriptor(t *testing.T) {
	s := New(4)
	s.SetModel(&fakeRenderer{id: "cube", depth: 4, renderDepth: 4})

	frag := s.Fragment()
	if !strings.Contains(frag, "<t:model type='cube' depth='4' render-depth='4'/>") {
		t.Errorf("fragment missing model descriptor: %s", frag)
	}
}

func TestFragmentNoModel(t *testing.T) {
	s := New(4)
	if strings.Contains(s.Fragment(), "<t:model") {
		t.Error("fragment should not contain a model descriptor when none is installed")
	}
}

func TestFragmentEscapesStrings(t *testing.T) {
	s := New(2, WithIDPrefix("a<b&c'd"))
	frag := s.Fragment()
	if !strings.Contains(frag, "id-prefix='a&lt;b&amp;c&apos;d'") {
		t.Errorf("id-prefix not escaped: %s", frag)
	}
}

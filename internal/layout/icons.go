package layout

// Icon is one technology shown in the cloud.
type Icon struct {
	File string `json:"icon" yaml:"icon"`
	Name string `json:"name" yaml:"name"`
}

var defaultIcons = []Icon{
	{"django.svg", "Django"},
	{"dotnet.svg", ".NET"},
	{"expo.svg", "Expo"},
	{"express.svg", "Express"},
	{"figma.svg", "Figma"},
	{"github.svg", "GitHub"},
	{"gitlab.svg", "GitLab"},
	{"java.svg", "Java"},
	{"nestjs.svg", "NestJS"},
	{"nextjs.svg", "Next.js"},
	{"node.svg", "Node.js"},
	{"opencv.svg", "OpenCV"},
	{"python.svg", "Python"},
	{"pytorch.svg", "PyTorch"},
	{"railway.svg", "Railway"},
	{"react.svg", "React"},
	{"threejs.svg", "Three.js"},
	{"vuejs.svg", "Vue.js"},
	{"yolo.svg", "YOLO"},
}

// DefaultIcons returns a copy of the portfolio catalog.
func DefaultIcons() []Icon {
	out := make([]Icon, len(defaultIcons))
	copy(out, defaultIcons)
	return out
}

// Icons returns n icons, cycling the default catalog when n exceeds it.
func Icons(n int) []Icon {
	if n <= 0 {
		return nil
	}
	out := make([]Icon, n)
	for i := range out {
		out[i] = defaultIcons[i%len(defaultIcons)]
	}
	return out
}

// Placed pairs an icon with its resting position.
type Placed struct {
	Icon
	Index    int  `json:"index"`
	Position Vec3 `json:"position"`
}

// Arrange lays icons out on a sphere in catalog order.
func Arrange(icons []Icon, radius float64) []Placed {
	out := make([]Placed, len(icons))
	for i, ic := range icons {
		out[i] = Placed{Icon: ic, Index: i, Position: Place(i, len(icons), radius)}
	}
	return out
}

package listbox

// Part names one renderable piece of the listbox.
type Part int

const (
	PartListbox Part = iota
	PartButton
	PartLabel
	PartOptions
	PartOption
)

// Element describes what the rendering layer should materialize a part as.
// Unwrapped parts render their children directly with no wrapping element.
type Element struct {
	Tag       string
	Unwrapped bool
}

// DefaultElement returns the built-in descriptor for a part: the top-level
// listbox renders no wrapper, the button a pressable control, the label a
// label element, the container a list, and each option a list item.
func DefaultElement(part Part) Element {
	switch part {
	case PartButton:
		return Element{Tag: "button"}
	case PartLabel:
		return Element{Tag: "label"}
	case PartOptions:
		return Element{Tag: "ul"}
	case PartOption:
		return Element{Tag: "li"}
	default:
		return Element{Unwrapped: true}
	}
}

// ElementFor resolves the descriptor for a part, honouring caller overrides
// installed with WithElement.
func (l *Listbox) ElementFor(part Part) Element {
	if el, ok := l.elements[part]; ok {
		return el
	}
	return DefaultElement(part)
}

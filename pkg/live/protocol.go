package live

import (
	"encoding/json"

	"github.com/vango-dev/vangoui/pkg/dom"
)

// Message types sent by the browser.
const (
	msgEvent   = "event"   // element handler, addressed by hid
	msgDoc     = "doc"     // document-level event
	msgWin     = "win"     // window scroll or resize
	msgMeasure = "measure" // viewport and data-measure rects
)

// Message types sent to the browser.
const (
	msgHTML       = "html"
	msgScrollLock = "scroll-lock"
	msgError      = "error"
)

// clientMessage is one JSON frame from the browser:
//
//	{"t":"event","hid":"h3","type":"click","data":{...}}
//	{"t":"doc","type":"pointermove","data":{"x":10,"y":20}}
//	{"t":"win","type":"resize","data":{"vw":1024,"vh":768}}
//	{"t":"measure","data":{"vw":1024,"vh":768,"rects":{"id":{"x":0,"y":0,"w":10,"h":10}}}}
type clientMessage struct {
	T    string    `json:"t"`
	HID  string    `json:"hid,omitempty"`
	Type string    `json:"type,omitempty"`
	Data eventData `json:"data"`
}

type eventData struct {
	Key   string              `json:"key,omitempty"`
	X     float64             `json:"x,omitempty"`
	Y     float64             `json:"y,omitempty"`
	Path  []string            `json:"path,omitempty"`
	VW    float64             `json:"vw,omitempty"`
	VH    float64             `json:"vh,omitempty"`
	Rects map[string]rectData `json:"rects,omitempty"`
}

type rectData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// serverMessage is one JSON frame to the browser.
type serverMessage struct {
	T       string `json:"t"`
	HTML    string `json:"html,omitempty"`
	Locked  *bool  `json:"locked,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func decodeMessage(data []byte) (clientMessage, error) {
	var msg clientMessage
	err := json.Unmarshal(data, &msg)
	return msg, err
}

// event converts the payload into a dom.Event of the given kind.
func (d eventData) event(kind string) dom.Event {
	return dom.Event{
		Kind:    dom.EventKind(kind),
		Key:     d.Key,
		ClientX: d.X,
		ClientY: d.Y,
		Path:    d.Path,
	}
}

func (d eventData) viewport() dom.Size {
	return dom.Size{Width: d.VW, Height: d.VH}
}

func (d eventData) rects() map[string]dom.Rect {
	out := make(map[string]dom.Rect, len(d.Rects))
	for id, r := range d.Rects {
		out[id] = dom.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
	}
	return out
}

// Package live runs vangoui components against a browser over a
// WebSocket.
//
// A Server upgrades /_live/{name} requests into Sessions. Each session
// mounts a root component and owns one loop goroutine; every browser
// event, timer callback and dispatched function runs on that loop, after
// which the root is rendered and the new HTML pushed when it changed.
//
// # Protocol
//
// Frames are JSON text messages. From the browser:
//
//	{"t":"event","hid":"h3","type":"click","data":{"x":10,"y":20,"path":["popover-1-trigger"]}}
//	{"t":"doc","type":"pointermove","data":{"x":140}}
//	{"t":"win","type":"resize","data":{"vw":1280,"vh":720}}
//	{"t":"measure","data":{"vw":1280,"vh":720,"rects":{"slider-track-1":{"x":0,"y":0,"w":200,"h":8}}}}
//
// To the browser:
//
//	{"t":"html","html":"..."}
//	{"t":"scroll-lock","locked":true}
//	{"t":"error","code":"E009","message":"Handler not found"}
//
// "event" frames address the nearest element carrying a handler for the
// event type; the browser runtime does not bubble them to ancestors.
// Elements with a data-measure attribute are measured after every HTML
// push and reported through "measure", which keeps dom.Host geometry
// current.
//
// # Mounting
//
//	srv := live.NewServer(func(name string) (live.MountFunc, bool) {
//	    return func(s *live.Session) vdom.Component {
//	        return ui.NewSlider(s.Host(), ui.SliderDefaultValue(40))
//	    }, name == "slider"
//	}, live.DefaultConfig())
//
// Roots implementing Dispose() are disposed when the session closes.
// Toast queues created with Session.ToastOptions schedule their timers on
// the session loop.
package live

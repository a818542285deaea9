// Package dashboard holds the state behind one dashboard view: the task
// collection (through the task service) and the modal form session used to
// create and edit tasks.
//
// A modal session moves Closed -> Open(creating|editing) -> Closed. It
// closes on Cancel or on a valid Submit; an invalid Submit keeps it open
// with the draft intact. Opening while a session is open replaces the
// draft.
package dashboard

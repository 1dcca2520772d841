/*
Package wm implements the desktop window manager: a fixed set of windows, their
open/minimized flags, the active window and the stacking order.

The window set is declared up front and never grows or shrinks. Commands only
change window attributes:

	m := wm.NewDefaultManager()
	m.Open(wm.KindExplorer)                // show, restore, raise, activate
	m.ToggleFocusOrMinimize("explorer-1")  // minimize: it is already active
	m.ToggleFocusOrMinimize("explorer-1")  // restore and raise again
	m.Close("explorer-1")

Stack orders grow from max+1 at every raise. Renderers should draw Visible()
in order and highlight only Focused(), because Active() may point at a closed
or minimized window.
*/
package wm

package command

func bufferNext(ctx *Context) {
	ed := ctx.Editor
	curr := ed.CurrentID()

	ids := ed.BufferIDs()
	for _, id := range ids {
		if id > curr {
			ed.SetCurrent(id)
			return
		}
	}
	ed.SetCurrent(ids[0])
}

func bufferPrev(ctx *Context) {
	ed := ctx.Editor
	curr := ed.CurrentID()

	ids := ed.BufferIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if ids[i] < curr {
			ed.SetCurrent(ids[i])
			return
		}
	}
	ed.SetCurrent(ids[len(ids)-1])
}

func bufferCreate(ctx *Context) {
	ctx.Editor.OpenScratch(true)
}

// bufferKill closes the current buffer and lands on the previous one.
// Closing the last buffer replaces it with a fresh scratch so the
// editor always has something to show.
func bufferKill(ctx *Context) {
	ed := ctx.Editor

	ed.CloseBuffer(ed.CurrentID())
	if ed.BufferCount() == 0 {
		ed.OpenScratch(true)
	} else {
		bufferPrev(ctx)
	}
}

func save(ctx *Context) {
	_, doc := ctx.Editor.Current()

	if err := doc.Save(); err != nil {
		ctx.Editor.Logger().Error("save of %s failed: %v", doc.Path(), err)
	}
}

func closeEditor(ctx *Context) {
	ctx.Editor.Quit(0)
}

// commandMode hands control to the client's prompt when it has one.
func commandMode(ctx *Context) {
	if ctx.OpenPrompt != nil {
		ctx.OpenPrompt()
	}
}

package executor

import "context"

// errNotSynchronous is panicked from the idle handler installed by ExecuteRequestSync to unwind
// execution the moment it would otherwise suspend. wait's poll loop has no way to bail out on its
// own if the idle handler doesn't resolve anything, so this is the only way to stop it.
type errNotSynchronous struct{}

func (errNotSynchronous) Error() string { return "execution did not complete synchronously" }

// ExecuteRequestSync executes a request that is required to complete without suspending. It is
// equivalent to ExecuteRequest except that it never waits on a ResolvePromise: if execution would
// need to suspend, it fails immediately with a single programmer error instead of hanging forever
// waiting for an idle handler that was never given the chance to resolve anything.
func ExecuteRequestSync(ctx context.Context, r *Request) (data *OrderedMap, errs []*Error) {
	if r.IdleHandler != nil {
		panic("ExecuteRequestSync does not support an IdleHandler")
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errNotSynchronous); ok {
				data = nil
				errs = []*Error{newError(nil, "Execution did not complete synchronously.")}
				return
			}
			panic(r)
		}
	}()

	syncReq := *r
	syncReq.IdleHandler = func() {
		panic(errNotSynchronous{})
	}

	return ExecuteRequest(ctx, &syncReq)
}

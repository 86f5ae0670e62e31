// Package flex provides a constraint-based flex layout core and a
// config-driven subtree rebuild primitive for retained widget trees.
//
// Users import this single package for the complete public API: the
// [Widget] interface, the [Flex] container, spacers, the [SizedBox]
// sizing wrapper, and [ReactiveNode].
//
// The package defines layout and update semantics only. Rendering,
// input routing, and concrete controls belong to the host framework:
// widgets receive a [Constraint] top-down, report a [Size] bottom-up,
// and paint through a host-supplied [Surface].
//
// All layout and update operations are single-threaded: the host
// delivers attachment, update, and layout requests from one event loop,
// and no operation blocks or suspends mid-computation.
package flex

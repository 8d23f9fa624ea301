/*
Package domain contains the core domain models for the EchoLattice engine.

It defines the fundamental entities of an echo session, such as Nodes, Edges,
and the session-level Graph aggregate. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - EchoNode: A single produced text artifact (seed or transform output).
  - EchoEdge: A directed relation between two node ids.
  - SessionMeta: The immutable configuration snapshot of one session.
  - EchoGraph: The aggregate of meta + nodes + edges owned by one run.
*/
package domain

/*
Package ports defines the driven ports (interfaces) for the Polish engine.

These interfaces decouple the core logic from external implementations,
allowing the service adapters to work with various storage backends.

# Key Interfaces

  - AnalysisStore: Responsible for persisting and loading past analysis results.
*/
package ports

/*
Package hostmock provides a pretend waPC host for testing host-routed sinks.

Configure the namespace, capability, and function you expect a sink to route
its log lines under, optionally add a PayloadValidator to assert the line
content, and inject Mock.HostCall where a sink accepts a HostCall override.
Every call is recorded in Calls regardless of validation outcome, so tests
can also assert cardinality.

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrHostUnavailable.
  - Otherwise, HostCall enforces the Expected fields you set (blank fields
    are wildcards) and runs PayloadValidator when provided.
  - The success response is always nil; a logging host has nothing to say.
*/
package hostmock

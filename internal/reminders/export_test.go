package reminders

// Trigger exposes Scheduler.trigger to the external test package.
var Trigger = (*Scheduler).trigger

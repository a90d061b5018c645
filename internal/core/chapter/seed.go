// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

// SeedCorpus returns the built-in book corpus the server starts with.
//
// # Content
//
// Twelve chapters of "A Field Guide to Systems Programming" — the study
// material the reading tracker was built around. IDs are assigned by the
// repository at construction.
func SeedCorpus() []*Chapter {
	return []*Chapter{
		{
			Title:   "Processes and the Illusion of Solitude",
			Summary: "How the operating system convinces every program it owns the machine.",
			Details: "Covers the process abstraction from fork to exit: address spaces, file descriptor tables, signals, and what the kernel actually keeps per process.",
			Cliffnotes: []string{
				"A process is a program plus the state needed to pause and resume it.",
				"fork/exec split creation from loading, which is why shells are simple.",
				"Orphans get reparented; zombies wait to be reaped.",
			},
		},
		{
			Title:   "Memory, Stacks, and Heaps",
			Summary: "Where your bytes actually live and who decides.",
			Details: "Walks the memory layout of a running process: text, data, stack growth, heap allocation strategies, and why allocators lie to you productively.",
			Cliffnotes: []string{
				"The stack is fast because freeing is a register move.",
				"Allocators trade fragmentation against speed against locality.",
			},
		},
		{
			Title:   "File Systems as Trees of Promises",
			Summary: "Durability is a contract with fine print.",
			Details: "Inodes, directories, journaling, and the narrow conditions under which a write is actually on disk. Ends with fsync and its discontents.",
			Cliffnotes: []string{
				"A file name is a reference, not the file.",
				"Journals make crashes recoverable, not writes instant.",
				"fsync the directory too.",
			},
		},
		{
			Title:   "Concurrency Without Tears",
			Summary: "Threads, races, and the discipline that tames them.",
			Details: "Data races, mutexes, condition variables, and message passing. Argues that ownership discipline beats lock cleverness nearly every time.",
			Cliffnotes: []string{
				"A data race is undefined behavior, not a rare flake.",
				"Share memory by communicating where you can.",
			},
		},
		{
			Title:   "Networking from Socket to Stream",
			Summary: "What actually happens between connect and close.",
			Details: "The socket API, TCP's guarantees and non-guarantees, backpressure, and why every robust protocol ends up with framing and timeouts.",
			Cliffnotes: []string{
				"TCP gives you a byte stream, never message boundaries.",
				"Timeouts are part of the protocol, not an afterthought.",
			},
		},
		{
			Title:   "Scheduling and the Art of Fairness",
			Summary: "Why your program runs when it runs.",
			Details: "Run queues, priorities, preemption, and latency versus throughput. Includes a tour of what 'nice' actually does.",
			Cliffnotes: []string{
				"The scheduler optimizes a goal; know which one.",
				"Priority inversion is solved by inheritance, not hope.",
			},
		},
		{
			Title:   "Virtual Memory and Useful Lies",
			Summary: "Page tables, faults, and copy-on-write economics.",
			Details: "How virtual addressing enables isolation, overcommit, and mmap tricks, and what a page fault costs when the lie is called.",
			Cliffnotes: []string{
				"Allocation is a promise; the fault is the payment.",
				"COW makes fork cheap until somebody writes.",
			},
		},
		{
			Title:   "Storage Hierarchies and Caching",
			Summary: "Every layer is a cache for the one below it.",
			Details: "Registers to tape: latency numbers worth memorizing, cache eviction, write-back versus write-through, and why sequential beats random everywhere.",
			Cliffnotes: []string{
				"Locality is the only performance trick that always works.",
				"A cache without an invalidation story is a bug farm.",
			},
		},
		{
			Title:   "Security Boundaries",
			Summary: "Privilege, isolation, and the principle of least surprise.",
			Details: "Users, capabilities, namespaces, and sandboxes. What a boundary actually guarantees and the classic ways boundaries leak.",
			Cliffnotes: []string{
				"A boundary you cannot name is not a boundary.",
				"Parse, then validate, then trust — in that order.",
			},
		},
		{
			Title:   "Observability in Anger",
			Summary: "Logs, metrics, and traces when things are on fire.",
			Details: "Structured logging, correlation IDs, and the difference between what you log for debugging and what you log for auditing.",
			Cliffnotes: []string{
				"If you cannot correlate it, you cannot debug it.",
				"Log the decision, not just the outcome.",
			},
		},
		{
			Title:   "Distributed Systems, Reluctantly",
			Summary: "The network is the computer, unfortunately.",
			Details: "Partial failure, idempotency, retries with backoff, and why exactly-once delivery is a slogan rather than a feature.",
			Cliffnotes: []string{
				"Retries require idempotency or they require regret.",
				"Timeout plus retry plus no dedup equals duplication.",
			},
		},
		{
			Title:   "Performance as a Habit",
			Summary: "Measure, hypothesize, change one thing.",
			Details: "Profilers, benchmarks, and the discipline of not optimizing what you have not measured. Closes the loop back to chapter one.",
			Cliffnotes: []string{
				"Amdahl's law caps your enthusiasm.",
				"The fastest code is the code you deleted.",
			},
		},
	}
}

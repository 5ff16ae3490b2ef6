package content

import (
	"fmt"

	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// Canned content served when generation fails. Deterministic per topic
// so the conversation always makes progress, even fully offline.

// FallbackTags is also the tag vocabulary used for free-question
// routing when a session has no extracted tags yet.
var FallbackTags = map[string][]string{
	"network":         {"OSI-7-Layers", "TCP/IP", "HTTP", "DNS", "Routing"},
	"os":              {"Processes", "Threads", "Scheduling", "Virtual-Memory", "Deadlock"},
	"database":        {"Indexes", "Transactions", "Normalization", "Joins", "Isolation-Levels"},
	"data-structures": {"Arrays", "Linked-Lists", "Hash-Tables", "Trees", "Heaps"},
	"algorithms":      {"Complexity", "Sorting", "Binary-Search", "Graph-Traversal", "Dynamic-Programming"},
	"web":             {"HTTP-Lifecycle", "REST", "Browsers", "Cookies-Sessions", "CORS"},
}

// fallbackTagsFor returns the canned tags for topic, or the network set
// for anything unrecognized.
func fallbackTagsFor(topic string) []string {
	if tags, ok := FallbackTags[topic]; ok {
		return tags
	}
	return FallbackTags["network"]
}

// fallbackSubtopics builds a roadmap from the topic's fallback tags.
func fallbackSubtopics(topic string) []study.Subtopic {
	tags := fallbackTagsFor(topic)
	subs := make([]study.Subtopic, 0, len(tags))
	for _, t := range tags {
		subs = append(subs, study.Subtopic{Title: t, Description: "Core concept of " + topic})
	}
	return subs
}

var fallbackExplanations = map[string]string{
	"network": "Networking is how computers exchange data. The OSI model splits " +
		"communication into 7 layers, from physical cables up to applications. " +
		"In practice the TCP/IP stack does the work: IP addresses and routes " +
		"packets between machines, TCP turns unreliable packets into a reliable " +
		"byte stream using a three-way handshake and acknowledgements, and " +
		"application protocols like HTTP and DNS run on top. When you load a web " +
		"page, DNS resolves the name to an address, TCP connects, and HTTP " +
		"requests the content.",
	"os": "An operating system shares one machine between many programs. Each " +
		"program runs as a process with its own virtual address space; threads " +
		"inside a process share that space and are the unit the scheduler puts " +
		"on CPU cores. Virtual memory maps process addresses onto physical RAM " +
		"page by page, swapping cold pages to disk. When threads share data they " +
		"need synchronization, and careless lock ordering causes deadlock.",
	"database": "A relational database stores data in tables and answers " +
		"declarative SQL queries. Indexes (usually B-trees) make lookups fast at " +
		"the cost of slower writes. Transactions group changes so they apply " +
		"atomically and stay consistent even when many clients run at once; " +
		"isolation levels trade strictness for throughput. Normalization splits " +
		"data to avoid duplication, and joins put it back together at query time.",
	"data-structures": "Data structures organize values for the operations you " +
		"need. Arrays give constant-time access by position; linked lists give " +
		"cheap insertion but linear search. Hash tables map keys to values in " +
		"near constant time. Trees keep data ordered for range queries, and " +
		"heaps surface the smallest or largest element first. The right choice " +
		"follows from which operations must be fast.",
	"algorithms": "Algorithm analysis asks how cost grows with input size, " +
		"written in big-O notation. Sorting and binary search are the canonical " +
		"building blocks: sorted data can be searched in logarithmic time. " +
		"Graphs model relationships and are explored breadth-first or " +
		"depth-first. Dynamic programming solves problems whose subproblems " +
		"overlap by storing each answer once.",
	"web": "The web is request/response over HTTP. The browser resolves the " +
		"URL, fetches HTML, then requests the scripts and styles it references. " +
		"REST APIs expose resources through HTTP verbs. Because HTTP is " +
		"stateless, cookies and sessions carry identity between requests, and " +
		"CORS rules control which origins may call an API from the browser.",
}

func fallbackExplanation(topic string) Explanation {
	text, ok := fallbackExplanations[topic]
	if !ok {
		text = fallbackExplanations["network"]
	}
	return Explanation{Text: text, Tags: fallbackTagsFor(topic)}
}

// fallbackLevelTests holds one full placement test per topic:
// 2 boolean, 2 choice, 1 free, in canonical order.
var fallbackLevelTests = map[string][]study.Question{
	"network": {
		{Type: study.TypeBoolean, Text: "TCP guarantees in-order delivery of the byte stream.", Answer: "O", Level: study.LevelBeginner, Tag: "TCP/IP"},
		{Type: study.TypeBoolean, Text: "UDP establishes a connection with a three-way handshake before sending data.", Answer: "X", Level: study.LevelBeginner, Tag: "TCP/IP"},
		{Type: study.TypeChoice, Text: "Which OSI layer is responsible for end-to-end delivery between processes?", Options: []string{"Physical", "Network", "Transport", "Session"}, Answer: "C", Level: study.LevelIntermediate, Tag: "OSI-7-Layers"},
		{Type: study.TypeChoice, Text: "What does DNS primarily translate?", Options: []string{"IP addresses to MAC addresses", "Domain names to IP addresses", "URLs to HTML", "Ports to processes"}, Answer: "B", Level: study.LevelIntermediate, Tag: "DNS"},
		{Type: study.TypeFree, Text: "Explain what happens during the TCP three-way handshake.", Answer: "The client sends SYN, the server replies SYN-ACK, and the client sends ACK, establishing sequence numbers for a reliable connection.", Level: study.LevelAdvanced, Tag: "TCP/IP"},
	},
	"os": {
		{Type: study.TypeBoolean, Text: "Threads of one process share the same address space.", Answer: "O", Level: study.LevelBeginner, Tag: "Threads"},
		{Type: study.TypeBoolean, Text: "A context switch between processes is cheaper than one between threads of the same process.", Answer: "X", Level: study.LevelIntermediate, Tag: "Scheduling"},
		{Type: study.TypeChoice, Text: "Which component decides which runnable thread gets the CPU next?", Options: []string{"The linker", "The scheduler", "The page table", "The shell"}, Answer: "B", Level: study.LevelBeginner, Tag: "Scheduling"},
		{Type: study.TypeChoice, Text: "What is stored in a page table?", Options: []string{"Open file descriptors", "Virtual-to-physical address mappings", "Thread priorities", "Interrupt vectors"}, Answer: "B", Level: study.LevelIntermediate, Tag: "Virtual-Memory"},
		{Type: study.TypeFree, Text: "Name the four conditions required for deadlock.", Answer: "Mutual exclusion, hold and wait, no preemption, and circular wait.", Level: study.LevelAdvanced, Tag: "Deadlock"},
	},
	"database": {
		{Type: study.TypeBoolean, Text: "An index speeds up reads but can slow down writes.", Answer: "O", Level: study.LevelBeginner, Tag: "Indexes"},
		{Type: study.TypeBoolean, Text: "A transaction that fails halfway leaves its partial changes applied.", Answer: "X", Level: study.LevelBeginner, Tag: "Transactions"},
		{Type: study.TypeChoice, Text: "Which property set defines transactional guarantees?", Options: []string{"CRUD", "ACID", "REST", "SOLID"}, Answer: "B", Level: study.LevelBeginner, Tag: "Transactions"},
		{Type: study.TypeChoice, Text: "Which join returns only rows with matches in both tables?", Options: []string{"LEFT JOIN", "FULL OUTER JOIN", "INNER JOIN", "CROSS JOIN"}, Answer: "C", Level: study.LevelIntermediate, Tag: "Joins"},
		{Type: study.TypeFree, Text: "What problem does normalization solve?", Answer: "It removes duplicated data by splitting tables, preventing update anomalies and inconsistency.", Level: study.LevelAdvanced, Tag: "Normalization"},
	},
	"data-structures": {
		{Type: study.TypeBoolean, Text: "Accessing an array element by index takes constant time.", Answer: "O", Level: study.LevelBeginner, Tag: "Arrays"},
		{Type: study.TypeBoolean, Text: "A singly linked list supports constant-time access by index.", Answer: "X", Level: study.LevelBeginner, Tag: "Linked-Lists"},
		{Type: study.TypeChoice, Text: "What is the average lookup cost of a hash table?", Options: []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"}, Answer: "A", Level: study.LevelIntermediate, Tag: "Hash-Tables"},
		{Type: study.TypeChoice, Text: "Which structure pops its smallest (or largest) element first?", Options: []string{"Stack", "Queue", "Heap", "Trie"}, Answer: "C", Level: study.LevelIntermediate, Tag: "Heaps"},
		{Type: study.TypeFree, Text: "How does a hash table handle two keys hashing to the same bucket?", Answer: "By collision resolution, typically chaining entries in a list per bucket or probing for another open slot.", Level: study.LevelAdvanced, Tag: "Hash-Tables"},
	},
	"algorithms": {
		{Type: study.TypeBoolean, Text: "Binary search requires the input to be sorted.", Answer: "O", Level: study.LevelBeginner, Tag: "Binary-Search"},
		{Type: study.TypeBoolean, Text: "Quicksort's worst case is O(n log n).", Answer: "X", Level: study.LevelIntermediate, Tag: "Sorting"},
		{Type: study.TypeChoice, Text: "What is the time complexity of binary search?", Options: []string{"O(1)", "O(log n)", "O(n)", "O(n^2)"}, Answer: "B", Level: study.LevelBeginner, Tag: "Complexity"},
		{Type: study.TypeChoice, Text: "Which traversal explores a graph level by level?", Options: []string{"Depth-first search", "Breadth-first search", "Dijkstra's algorithm", "Topological sort"}, Answer: "B", Level: study.LevelIntermediate, Tag: "Graph-Traversal"},
		{Type: study.TypeFree, Text: "When is dynamic programming applicable to a problem?", Answer: "When the problem has overlapping subproblems and optimal substructure, so each subproblem's answer can be stored and reused.", Level: study.LevelAdvanced, Tag: "Dynamic-Programming"},
	},
	"web": {
		{Type: study.TypeBoolean, Text: "HTTP is a stateless protocol.", Answer: "O", Level: study.LevelBeginner, Tag: "HTTP-Lifecycle"},
		{Type: study.TypeBoolean, Text: "Cookies are stored on the server.", Answer: "X", Level: study.LevelBeginner, Tag: "Cookies-Sessions"},
		{Type: study.TypeChoice, Text: "Which HTTP method is conventionally used to update an existing resource in a REST API?", Options: []string{"GET", "PUT", "HEAD", "OPTIONS"}, Answer: "B", Level: study.LevelIntermediate, Tag: "REST"},
		{Type: study.TypeChoice, Text: "What does CORS control?", Options: []string{"Response compression", "Which origins may call an API from a browser", "TLS certificate validation", "URL routing"}, Answer: "B", Level: study.LevelIntermediate, Tag: "CORS"},
		{Type: study.TypeFree, Text: "Describe what happens between typing a URL and seeing the page.", Answer: "The browser resolves the domain via DNS, opens a TCP connection, sends an HTTP request, receives the HTML response, and renders it while fetching referenced resources.", Level: study.LevelAdvanced, Tag: "Browsers"},
	},
}

func fallbackLevelTest(topic string) []study.Question {
	qs, ok := fallbackLevelTests[topic]
	if !ok {
		qs = fallbackLevelTests["network"]
	}
	out := make([]study.Question, len(qs))
	copy(out, qs)
	for i := range out {
		out[i].Topic = topic
	}
	return out
}

// fallbackQuiz reuses the placement-test material: first boolean, first
// choice, and the free question, with the level tags dropped.
func fallbackQuiz(topic string) []study.Question {
	test := fallbackLevelTest(topic)
	quiz := []study.Question{test[0], test[2], test[4]}
	for i := range quiz {
		quiz[i].Level = ""
	}
	return quiz
}

func fallbackInterview(topic, subtopic string) []study.InterviewQuestion {
	if subtopic == "" {
		subtopic = topic
	}
	return []study.InterviewQuestion{
		{
			Question:    fmt.Sprintf("Explain %s to someone new to %s. What problem does it solve?", subtopic, topic),
			ModelAnswer: fmt.Sprintf("A strong answer defines %s precisely, names the problem it addresses, and walks through one concrete example.", subtopic),
		},
		{
			Question:    fmt.Sprintf("Where have you seen %s matter in a real system, and what goes wrong without it?", subtopic),
			ModelAnswer: "A strong answer ties the concept to a production scenario and names the specific failure mode it prevents.",
		},
		{
			Question:    fmt.Sprintf("What are the trade-offs or limits of %s, and when would you choose an alternative?", subtopic),
			ModelAnswer: "A strong answer names at least one cost or limitation and a situation where a different approach wins.",
		},
	}
}

func fallbackFreeAnswer(topic, tag string) string {
	return fmt.Sprintf("Sorry, I can't generate a detailed answer right now. "+
		"%s is a key part of %s worth revisiting; please try asking again in a moment.", tag, topic)
}

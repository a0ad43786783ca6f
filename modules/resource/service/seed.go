package service

import (
	"internhub/modules/resource/entity"
)

var resourceSeed = []entity.Resource{
	{
		ID:          "mock-test-aptitude",
		Title:       "Aptitude Mock Test",
		Description: "Timed aptitude test covering quantitative and logical reasoning",
		Type:        entity.ResourceTypeMockTest,
		Link:        "/resources/mock-test/aptitude",
	},
	{
		ID:          "mock-test-coding",
		Title:       "Coding Mock Test",
		Description: "Data structures and algorithms problems at interview difficulty",
		Type:        entity.ResourceTypeMockTest,
		Link:        "/resources/mock-test/coding",
	},
	{
		ID:          "ai-quiz-fundamentals",
		Title:       "AI Quiz",
		Description: "Quick quiz on computer science fundamentals",
		Type:        entity.ResourceTypeAIQuiz,
		Link:        "/resources/ai-quiz",
	},
}

var quizPool = []entity.QuizQuestion{
	{
		ID:       1,
		Question: "Which data structure uses FIFO ordering?",
		Options:  []string{"Stack", "Queue", "Tree", "Graph"},
		Answer:   1,
	},
	{
		ID:       2,
		Question: "What is the time complexity of binary search on a sorted array?",
		Options:  []string{"O(n)", "O(n log n)", "O(log n)", "O(1)"},
		Answer:   2,
	},
	{
		ID:       3,
		Question: "Which SQL clause filters rows after aggregation?",
		Options:  []string{"WHERE", "GROUP BY", "HAVING", "ORDER BY"},
		Answer:   2,
	},
	{
		ID:       4,
		Question: "Which HTTP status code indicates a resource was not found?",
		Options:  []string{"200", "301", "404", "500"},
		Answer:   2,
	},
	{
		ID:       5,
		Question: "Which of these is NOT a relational database?",
		Options:  []string{"PostgreSQL", "MySQL", "MongoDB", "SQLite"},
		Answer:   2,
	},
	{
		ID:       6,
		Question: "What does REST stand for?",
		Options: []string{
			"Representational State Transfer",
			"Remote Execution of Stateless Transactions",
			"Resource Exchange over Secure Transport",
			"Request-Evaluate-Send-Terminate",
		},
		Answer: 0,
	},
	{
		ID:       7,
		Question: "Which sorting algorithm has the best average-case time complexity?",
		Options:  []string{"Bubble sort", "Insertion sort", "Merge sort", "Selection sort"},
		Answer:   2,
	},
	{
		ID:       8,
		Question: "In Git, which command creates a new branch and switches to it?",
		Options:  []string{"git branch", "git checkout -b", "git merge", "git switch --detach"},
		Answer:   1,
	},
	{
		ID:       9,
		Question: "Which protocol does HTTPS use for encryption?",
		Options:  []string{"SSH", "TLS", "IPSec", "SFTP"},
		Answer:   1,
	},
	{
		ID:       10,
		Question: "What is a deadlock?",
		Options: []string{
			"A process that never terminates",
			"Two or more processes each waiting for the other to release a resource",
			"A memory leak in long-running processes",
			"An unhandled exception in a worker thread",
		},
		Answer: 1,
	},
}

var materialSeed = []entity.Material{
	{Name: "Resume Writing Guide", Key: "materials/resume-writing-guide.pdf"},
	{Name: "Interview Preparation Handbook", Key: "materials/interview-preparation-handbook.pdf"},
	{Name: "System Design Primer", Key: "materials/system-design-primer.pdf"},
}

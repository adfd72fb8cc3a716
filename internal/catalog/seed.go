package catalog

func init() {
	c = buildCatalog(seedRoles())
}

// seedRoles returns the full catalog: ten career roles plus the
// standalone skill tracks offered by the roadmap generator.
func seedRoles() []Role {
	return []Role{
		{
			ID:    "Frontend",
			Label: "Frontend",
			Kind:  KindRole,
			Topics: []string{
				"Internet Fundamentals (HTTP, DNS, Hosting)",
				"HTML (Semantic, Forms, A11y, SEO)",
				"CSS (Flexbox, Grid, Responsive)",
				"Tailwind CSS & Preprocessors",
				"JavaScript (ES6+, DOM, Fetch)",
				"Git & GitHub/GitLab",
				"Package Managers (npm, yarn)",
				"React",
				"Vue.js",
				"Angular",
				"Svelte/Solid/Qwik",
				"Build Tools (Vite, Webpack)",
				"Code Quality (ESLint, Prettier)",
				"Unit Testing (Vitest, Jest)",
				"E2E Testing (Playwright, Cypress)",
				"Auth & Security (JWT, OAuth, CORS)",
				"TypeScript",
				"Web Components & Shadow DOM",
				"SSR (Next.js, Nuxt, SvelteKit)",
				"GraphQL (Apollo, Relay)",
				"Static Site Generators (Astro, Eleventy)",
				"Performance Optimization (Lighthouse)",
				"Browser APIs (Storage, Workers)",
				"Progressive Web Apps (PWA)",
			},
		},
		{
			ID:    "Backend",
			Label: "Backend",
			Kind:  KindRole,
			Topics: []string{
				"Node.js", "Python", "Java", "SQL (Postgres/MySQL)", "REST APIs",
				"Authentication (JWT)", "Docker", "Redis", "Message Queues", "Microservices",
			},
		},
		{
			ID:    "Full Stack",
			Label: "Full Stack",
			Kind:  KindRole,
			Topics: []string{
				"Frontend Frameworks", "Backend Logic", "Database Design", "API Development",
				"DevOps Basics", "Version Control", "System Design", "Testing",
			},
		},
		{
			ID:    "DevOps",
			Label: "DevOps",
			Kind:  KindRole,
			Topics: []string{
				"Linux Basics", "AWS/Azure", "Docker/Kubernetes", "CI/CD Pipelines",
				"Terraform", "Scripting (Bash/Python)", "Monitoring Tools", "Networking",
			},
		},
		{
			ID:    "DevSecOps",
			Label: "DevSecOps",
			Kind:  KindRole,
			Topics: []string{
				"Security Protocols", "Compliance Standards", "Vulnerability Scanning",
				"Cloud Security", "CI/CD Security", "Automation", "Ethical Hacking",
			},
		},
		{
			ID:    "AI Engineer",
			Label: "AI Engineer",
			Kind:  KindRole,
			Topics: []string{
				"Python", "TensorFlow/PyTorch", "NLP", "Computer Vision",
				"Model Deployment", "Cloud AI Services", "Mathematics", "Data Pipelines",
			},
		},
		{
			ID:    "AI and Data Scientist",
			Label: "AI & Data Scientist",
			Kind:  KindRole,
			Topics: []string{
				"Python", "Statistics & Probability", "Machine Learning Algos",
				"Data Wrangling", "Jupyter Notebooks", "Big Data Tools", "Visualization",
			},
		},
		{
			ID:    "Android",
			Label: "Android",
			Kind:  KindRole,
			Topics: []string{
				"Kotlin", "Java", "Android SDK", "Jetpack Compose", "Material Design",
				"Mobile Architecture", "Play Store Deployment",
			},
		},
		{
			ID:    "iOS",
			Label: "iOS",
			Kind:  KindRole,
			Topics: []string{
				"Swift", "SwiftUI", "UIKit", "Xcode", "Core Data",
				"App Store Guidelines", "CocoaPods",
			},
		},
		{
			ID:    "Blockchain",
			Label: "Blockchain",
			Kind:  KindRole,
			Topics: []string{
				"Solidity", "Smart Contracts", "Web3.js", "Cryptography", "Ethereum",
				"Consensus Mechanisms", "DeFi Basics",
			},
		},

		{
			ID: "SQL", Label: "SQL", Kind: KindSkill,
			Topics: []string{
				"Basic Queries (SELECT, WHERE)", "Joins (INNER, LEFT, RIGHT)",
				"Aggregations (GROUP BY)", "Subqueries", "Normalization", "Indexes",
				"Stored Procedures", "Transactions",
			},
		},
		{
			ID: "React", Label: "React", Kind: KindSkill,
			Topics: []string{
				"JSX & Components", "Props & State", "Hooks (useState, useEffect)",
				"Context API", "React Router", "Redux/Zustand", "Custom Hooks",
				"Performance Optimization",
			},
		},
		{
			ID: "Vue", Label: "Vue", Kind: KindSkill,
			Topics: []string{
				"Directives", "Components & Props", "Computed & Watchers",
				"Lifecycle Hooks", "Vue Router", "Pinia/Vuex", "Composition API", "Slots",
			},
		},
		{
			ID: "Angular", Label: "Angular", Kind: KindSkill,
			Topics: []string{
				"Components & Templates", "Dependency Injection", "Services", "Routing",
				"RxJS Observables", "Forms (Reactive/Template)", "Modules", "Directives",
			},
		},
		{
			ID: "JavaScript", Label: "JavaScript", Kind: KindSkill,
			Topics: []string{
				"Variables & Types", "Functions (Arrow, HOF)", "DOM Manipulation",
				"Events", "ES6+ Features", "Promises & Async/Await", "Closures", "Prototypes",
			},
		},
		{
			ID: "Python", Label: "Python", Kind: KindSkill,
			Topics: []string{
				"Syntax & Variables", "Data Structures (Lists, Dicts)",
				"Loops & Conditionals", "Functions & Modules", "OOP Basics",
				"File Handling", "PIP & VirtualEnv", "Error Handling",
			},
		},
		{
			ID: "Java", Label: "Java", Kind: KindSkill,
			Topics: []string{
				"Syntax & Types", "OOP Principles", "Collections Framework",
				"Exception Handling", "Streams API", "Multithreading", "File I/O", "JVM Basics",
			},
		},
		{
			ID: "API Design", Label: "API Design", Kind: KindSkill,
			Topics: []string{
				"REST Principles", "HTTP Methods & Status Codes", "JSON/XML",
				"Authentication (Auth/JWT)", "Versioning", "Pagination",
				"Documentation (Swagger)", "Rate Limiting",
			},
		},
		{
			ID: "C++", Label: "C++", Kind: KindSkill,
			Topics: []string{
				"Syntax & Basics", "Pointers & References", "Memory Management", "OOP",
				"STL (Vectors, Maps)", "Templates", "File I/O", "Smart Pointers",
			},
		},
		{
			ID: "Flutter", Label: "Flutter", Kind: KindSkill,
			Topics: []string{
				"Dart Basics", "Widget Tree", "Stateless vs Stateful", "Layouts",
				"Navigation", "State Management (Provider)", "API Calls", "Material Design",
			},
		},
		{
			ID: "Rust", Label: "Rust", Kind: KindSkill,
			Topics: []string{
				"Ownership & Borrowing", "Lifetimes", "Structs & Enums",
				"Pattern Matching", "Traits", "Error Handling", "Concurrency", "Cargo & Crates",
			},
		},
		{
			ID: "Go", Label: "Go", Kind: KindSkill,
			Topics: []string{
				"Syntax & Packages", "Goroutines", "Channels", "Interfaces", "Structs",
				"Error Handling", "Go Modules", "Defer/Panic/Recover",
			},
		},
		{
			ID: "React Native", Label: "React Native", Kind: KindSkill,
			Topics: []string{
				"Core Components", "Flexbox Layout", "Navigation", "State Management",
				"Native Modules", "API Integration", "Device APIs", "Deployment",
			},
		},
		{
			ID: "Linux", Label: "Linux", Kind: KindSkill,
			Topics: []string{
				"File System Hierarchy", "Basic Commands (ls, cd, mv)",
				"Permissions (chmod, chown)", "Bash Scripting", "Process Management",
				"Package Management", "Networking Basics", "SSH",
			},
		},
		{
			ID: "Docker", Label: "Docker", Kind: KindSkill,
			Topics: []string{
				"Container Concepts", "Images vs Containers", "Dockerfile Instructions",
				"Docker Compose", "Volumes & Storage", "Networking", "Docker Hub",
				"Multi-stage Builds",
			},
		},
		{
			ID: "Swift", Label: "Swift", Kind: KindSkill,
			Topics: []string{
				"Syntax & Basics", "Optionals", "Structs vs Classes", "Protocols",
				"Closures", "UIKit/SwiftUI Basics", "ARC (Memory)", "Concurrency",
			},
		},
		{
			ID: "Laravel", Label: "Laravel", Kind: KindSkill,
			Topics: []string{
				"MVC Architecture", "Routing", "Middleware", "Eloquent ORM",
				"Migrations", "Blade Templates", "Authentication", "Artisan CLI",
			},
		},
		{
			ID: "Kotlin", Label: "Kotlin", Kind: KindSkill,
			Topics: []string{
				"Syntax Basics", "Null Safety", "Classes & Objects",
				"Extension Functions", "Coroutines", "Collections", "Lambdas", "Android Basics",
			},
		},
		{
			ID: "C#", Label: "C#", Kind: KindSkill,
			Topics: []string{
				"Syntax & Types", "OOP", "LINQ", "Async/Await", "Generics",
				"Delegates & Events", "Exception Handling", ".NET Core Basics",
			},
		},
	}
}

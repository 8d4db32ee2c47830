package content

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

var (
	aboutIntro = `I am a passionate software engineer with a strong focus on building high-quality, user-centric web applications.
	With years of experience in full-stack development, I bridge the gap between creative design and robust engineering.`

	aboutApproach = `My approach is product-first: I don't just write code; I solve business problems.
	Whether it's optimizing load times for an e-commerce giant or architecting a scalable MVP for a startup,
	I bring the same level of precision and dedication to every project.`

	aboutOutside = `When I'm not coding, I'm likely exploring the latest in tech, contributing to open source, or mentoring aspiring developers.`

	heroTagline = `Specializing in building exceptional digital experiences.
	Merging technical expertise with design elegance to create scalable, performance-driven web applications.`
)

// Default returns the reference content set. Each call returns fresh slices.
func Default() Site {
	return Site{
		Profile: Profile{
			Name:       "Praveen Kumar",
			Headline:   "Full Stack Software Engineer",
			Tagline:    heroTagline,
			Email:      "pkpraveen83441234@gmail.com",
			GitHub:     "https://github.com/Praveen-pk-pro/",
			LinkedIn:   "https://www.linkedin.com/in/praveen-kumar-06ace/",
			About:      []string{aboutIntro, aboutApproach, aboutOutside},
			Highlights: []string{"Problem Solver", "Clean Code Advocate", "Performance Obsessed", "Fast Learner"},
		},
		NavLinks: []NavLink{
			{Name: "About", Href: "#about"},
			{Name: "Skills", Href: "#skills"},
			{Name: "Projects", Href: "#projects"},
			{Name: "Experience", Href: "#experience"},
			{Name: "Contact", Href: "#contact"},
		},
		TechIcons: []TechIcon{
			{Name: "Java", URL: devicon + "java/java-original.svg"},
			{Name: "Python", URL: devicon + "python/python-original.svg"},
			{Name: "HTML5", URL: devicon + "html5/html5-original.svg"},
			{Name: "CSS3", URL: devicon + "css3/css3-original.svg"},
			{Name: "JavaScript", URL: devicon + "javascript/javascript-original.svg"},
			{Name: "MongoDB", URL: devicon + "mongodb/mongodb-original.svg"},
			{Name: "React", URL: devicon + "react/react-original.svg"},
			{Name: "Node.js", URL: devicon + "nodejs/nodejs-original.svg"},
			{Name: "TypeScript", URL: devicon + "typescript/typescript-original.svg"},
			{Name: "Git", URL: devicon + "git/git-original.svg"},
			{Name: "Docker", URL: devicon + "docker/docker-original.svg"},
			{Name: "PostgreSQL", URL: devicon + "postgresql/postgresql-original.svg"},
		},
		Projects: []Project{
			{
				ID:    1,
				Title: "E-Commerce Analytics Dashboard",
				Description: "A high-performance analytics platform processing over 1M+ data points in real-time. " +
					"Built to assist marketing teams in visualizing customer trends with sub-second latency.",
				Tags:   []string{"React", "TypeScript", "D3.js", "Node.js"},
				Image:  "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=1000&auto=format&fit=crop",
				Video:  "https://joy1.videvo.net/videvo_files/video/free/2019-11/large_watermarked/190301_1_25_11_preview.mp4",
				Link:   "#",
				GitHub: "#",
			},
			{
				ID:    2,
				Title: "AI-Powered Task Manager",
				Description: "Smart task management application utilizing NLP to automatically categorize and prioritize user tasks. " +
					"Features offline-first architecture for seamless mobile usage.",
				Tags:   []string{"Next.js", "OpenAI API", "Tailwind", "PostgreSQL"},
				Image:  "https://picsum.photos/800/600?random=2",
				Link:   "#",
				GitHub: "#",
			},
			{
				ID:    3,
				Title: "FinTech Banking Portal",
				Description: "Secure and scalable banking interface designed for high-frequency trading users. " +
					"Implemented bank-grade security protocols and optimized rendering for complex financial charts.",
				Tags:   []string{"Vue.js", "Python", "Django", "WebSockets"},
				Image:  "https://picsum.photos/800/600?random=3",
				Link:   "#",
				GitHub: "#",
			},
			{
				ID:    4,
				Title: "Healthcare Patient System",
				Description: "HIPAA-compliant patient management system streamlining doctor-patient communication. " +
					"Reduced appointment scheduling time by 40% through intuitive UX design.",
				Tags:   []string{"React Native", "Firebase", "Redux", "Express"},
				Image:  "https://picsum.photos/800/600?random=4",
				Link:   "#",
				GitHub: "#",
			},
		},
		Experience: []ExperienceItem{
			{
				ID:      1,
				Role:    "Senior Frontend Engineer",
				Company: "TechFlow Solutions",
				Period:  "2021 - Present",
				Description: "Leading the frontend team in migrating legacy monoliths to micro-frontends. " +
					"Improved site performance scores by 35% and established a comprehensive design system used across 5 products.",
			},
			{
				ID:      2,
				Role:    "Full Stack Developer",
				Company: "Innovate Digital",
				Period:  "2019 - 2021",
				Description: "Developed and maintained full-stack web applications for enterprise clients. " +
					"Mentored junior developers and implemented CI/CD pipelines that reduced deployment time by 50%.",
			},
			{
				ID:      3,
				Role:    "Web Developer Intern",
				Company: "StartUp Inc.",
				Period:  "2018 - 2019",
				Description: "Collaborated with design teams to implement pixel-perfect UIs. " +
					"Optimized database queries which resulted in a 20% faster page load time for the main dashboard.",
			},
		},
		Skills: []SkillCategory{
			{Title: "Frontend", Skills: []string{"React", "TypeScript", "Next.js", "Tailwind CSS", "Framer Motion", "GSAP"}},
			{Title: "Backend", Skills: []string{"Node.js", "Python", "PostgreSQL", "GraphQL", "Redis", "Docker"}},
			{Title: "Tools & Methods", Skills: []string{"Git", "CI/CD", "AWS", "Agile", "Figma", "Jest"}},
		},
		Testimonials: []Testimonial{
			{
				ID:      1,
				Name:    "Sarah Johnson",
				Role:    "Product Manager",
				Company: "TechFlow Solutions",
				Text: "Praveen is one of those rare developers who truly understands the product vision. " +
					"His code is clean, reliable, and he always delivers ahead of schedule.",
				Avatar: "https://picsum.photos/100/100?random=10",
			},
			{
				ID:      2,
				Name:    "Michael Chen",
				Role:    "CTO",
				Company: "Innovate Digital",
				Text: "I was constantly impressed by Praveen's ability to solve complex technical challenges with simple, elegant solutions. " +
					"A true asset to any engineering team.",
				Avatar: "https://picsum.photos/100/100?random=11",
			},
		},
	}
}

package store

import (
	"time"

	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
)

// SeedProjects returns the initial portfolio entries loaded into an empty
// store at startup.
func SeedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:          "1",
			Title:       "E-Commerce Platform",
			Description: "Full-stack e-commerce solution with React, Node.js, and MongoDB. Features include user authentication, payment processing, inventory management, and admin dashboard.",
			Image:       "https://images.pexels.com/photos/230544/pexels-photo-230544.jpeg?auto=compress&cs=tinysrgb&w=400",
			Technologies: []string{
				"React", "Node.js", "MongoDB", "Express", "Stripe", "JWT",
			},
			GithubURL: "https://github.com/yourusername/ecommerce-platform",
			LiveURL:   "https://ecommerce-demo.vercel.app",
			Category:  "Full Stack",
			Featured:  true,
			CreatedAt: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Task Management App",
			Description: "React-based task management application with drag-and-drop functionality, real-time updates, and team collaboration features.",
			Image:       "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=400",
			Technologies: []string{
				"React", "TypeScript", "Tailwind CSS", "Framer Motion", "React DnD",
			},
			GithubURL: "https://github.com/yourusername/task-manager",
			LiveURL:   "https://task-manager-demo.vercel.app",
			Category:  "Frontend",
			Featured:  true,
			CreatedAt: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "REST API Server",
			Description: "Scalable RESTful API server with authentication, authorization, data validation, and comprehensive documentation.",
			Image:       "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=400",
			Technologies: []string{
				"Node.js", "Express", "PostgreSQL", "JWT", "Swagger", "Docker",
			},
			GithubURL: "https://github.com/yourusername/rest-api-server",
			LiveURL:   "https://api-demo.herokuapp.com",
			Category:  "Backend",
			Featured:  false,
			CreatedAt: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Title:       "Weather Dashboard",
			Description: "Real-time weather application with location-based forecasts, interactive charts, and responsive design.",
			Image:       "https://images.pexels.com/photos/1118873/pexels-photo-1118873.jpeg?auto=compress&cs=tinysrgb&w=400",
			Technologies: []string{
				"React", "Chart.js", "Weather API", "Geolocation API", "CSS Grid",
			},
			GithubURL: "https://github.com/yourusername/weather-dashboard",
			LiveURL:   "https://weather-dashboard-demo.vercel.app",
			Category:  "Frontend",
			Featured:  false,
			CreatedAt: time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Title:       "Social Media API",
			Description: "Backend API for social media platform with real-time messaging, post management, and user interactions.",
			Image:       "https://images.pexels.com/photos/267350/pexels-photo-267350.jpeg?auto=compress&cs=tinysrgb&w=400",
			Technologies: []string{
				"Node.js", "Socket.io", "Redis", "MongoDB", "CloudinaryAPI", "JWT",
			},
			GithubURL: "https://github.com/yourusername/social-media-api",
			LiveURL:   "https://social-api-demo.herokuapp.com",
			Category:  "Backend",
			Featured:  true,
			CreatedAt: time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Title:       "Portfolio Website",
			Description: "Responsive portfolio website with modern design, animations, and admin panel for content management.",
			Image:       "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=400",
			Technologies: []string{
				"React", "Framer Motion", "Tailwind CSS", "Node.js", "Express",
			},
			GithubURL: "https://github.com/yourusername/portfolio-website",
			LiveURL:   "https://johndoe-portfolio.vercel.app",
			Category:  "Full Stack",
			Featured:  false,
			CreatedAt: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}
